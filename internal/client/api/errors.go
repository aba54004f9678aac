package api

import "errors"

var (
	// ErrUnavailable covers transport failures: connection refused, DNS,
	// timeouts. The backend was never reached or never answered.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the backend rejected the credential. The token
	// is no longer valid and must be purged by the caller.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrExchangeFailed means the one-time session identifier was rejected.
	// The identifier is spent either way; a fresh one must come from the
	// external login flow.
	ErrExchangeFailed = errors.New("session exchange failed")
)
