// Package metadata is the durable local key-value store of the client.
// It holds exactly one secret value, the session token, plus non-secret
// installation bookkeeping.
package metadata

import (
	"context"
)

// Repository is a durable key-value store. Get returns (nil, nil) for an
// absent key; absence is meaningful to callers (see common.SessionTokenKey).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	// InTx runs fn against a transaction-scoped repository. All writes made
	// through r commit together or not at all. The session layer uses this
	// to keep the token and its bookkeeping keys consistent.
	InTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
