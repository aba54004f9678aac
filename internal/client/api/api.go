// Package api implements the HTTP client for the VIP Club backend. It owns
// the shared outbound-request pipeline: the bearer credential attached to
// every request lives here, and the session layer is its sole writer.
package api

import (
	"context"

	"github.com/vipclub/vipclub-cli/internal/client/models"
)

// ExchangeResult is the payload of a successful session-id exchange: the
// resolved identity and the long-lived bearer token, always as a pair.
type ExchangeResult struct {
	Identity models.Identity
	Token    string
}

// TransactionQuery narrows the transactions listing. Zero values mean
// "backend defaults".
type TransactionQuery struct {
	Limit  int
	Offset int
	Type   string
}

// Client defines the backend operations used by the CLI.
//
// Credential handling:
//   - SetToken/ClearToken mutate the default authorization credential of the
//     pipeline. Only the session manager may call them.
//   - All other methods attach whatever credential is currently set.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	// Me resolves the current identity from the active bearer token.
	Me(ctx context.Context) (*models.Identity, error)

	// ExchangeSession trades a one-time session identifier for a token and
	// identity. The identifier is single-use server-side; callers must not
	// retry with the same value.
	ExchangeSession(ctx context.Context, sessionID string) (*ExchangeResult, error)

	// Logout asks the backend to invalidate the active token.
	Logout(ctx context.Context) error

	// Health checks backend liveness.
	Health(ctx context.Context) error

	Wallet(ctx context.Context) (*models.Wallet, error)
	Transactions(ctx context.Context, q TransactionQuery) (*models.TransactionPage, error)
	Deposit(ctx context.Context, amount float64) (*models.Wallet, string, error)
	Withdraw(ctx context.Context, amount float64, referenceID string) (*models.Wallet, string, error)
	Transfer(ctx context.Context, amount float64, from, to string) (*models.Wallet, error)

	Notifications(ctx context.Context, limit int, unreadOnly bool) (*models.NotificationPage, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context) error

	SetToken(token string)
	ClearToken()
	SetInstallationID(id string)

	Close() error
}
