package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vipclub/vipclub-cli/internal/client/api"
	"github.com/vipclub/vipclub-cli/internal/client/repositories/metadata"
	"github.com/vipclub/vipclub-cli/internal/common"
	"github.com/vipclub/vipclub-cli/internal/logging"
)

// Manager is the session state machine. All mutating operations serialize
// their effects through the manager's lock and a generation counter: a
// result is applied only if no later operation has started since, so the
// persisted token, the pipeline credential, and the published identity
// always come from the same resolution.
type Manager struct {
	client api.Client
	meta   metadata.Repository
	log    logging.Logger

	mu    sync.Mutex
	gen   uint64
	state State
	subs  []func(State)
}

// NewManager builds a Manager in the unresolved state. Nothing is read or
// sent until Bootstrap is called.
func NewManager(client api.Client, meta metadata.Repository, log logging.Logger) *Manager {
	return &Manager{
		client: client,
		meta:   meta,
		log:    log.With("component", "session"),
		state:  Unresolved(),
	}
}

// Current returns the present authentication state. No I/O.
func (m *Manager) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn to be called with every published state, starting
// with the current one. Callbacks run outside the manager's lock and must
// not block for long.
func (m *Manager) Subscribe(fn func(State)) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	st := m.state
	m.mu.Unlock()
	fn(st)
}

// begin starts a mutating operation: it invalidates any in-flight operation
// and publishes the resolving flag on top of the current state.
func (m *Manager) begin() uint64 {
	m.mu.Lock()
	m.gen++
	op := m.gen
	m.state = m.state.withResolving(true)
	st, subs := m.state, m.subs
	m.mu.Unlock()
	notify(subs, st)
	return op
}

// settle publishes st if op is still the current operation. apply, when
// non-nil, runs under the lock together with the state change so that token
// persistence, pipeline attachment, and publication land as one unit.
// Returns false when the result was stale and discarded.
func (m *Manager) settle(ctx context.Context, op uint64, st State, apply func(ctx context.Context) error) bool {
	m.mu.Lock()
	if m.gen != op {
		m.mu.Unlock()
		m.log.Debug(ctx, "discarding stale session result", "state", st.Kind())
		return false
	}
	if apply != nil {
		if err := apply(ctx); err != nil {
			m.log.Error(ctx, "failed to apply session result", "error", err)
			m.client.ClearToken()
			st = Anonymous()
		}
	}
	m.state = st
	subs := m.subs
	m.mu.Unlock()
	notify(subs, st)
	return true
}

// attachIfCurrent sets the pipeline credential unless op was superseded.
// A superseded operation must not touch the pipeline at all.
func (m *Manager) attachIfCurrent(op uint64, token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != op {
		return false
	}
	m.client.SetToken(token)
	return true
}

func notify(subs []func(State), st State) {
	for _, fn := range subs {
		fn(st)
	}
}

// Bootstrap resolves the persisted session once at process start. Absent
// token settles anonymous with no network call; a present token is attached
// to the pipeline and validated against the backend. Every failure mode is
// absorbed into the anonymous state; Bootstrap never reports an error.
func (m *Manager) Bootstrap(ctx context.Context) {
	op := m.begin()

	token, err := m.meta.Get(ctx, common.SessionTokenKey)
	if err != nil {
		m.log.Warn(ctx, "failed to read persisted token", "error", err)
		m.settle(ctx, op, Anonymous(), nil)
		return
	}
	if len(token) == 0 {
		m.settle(ctx, op, Anonymous(), nil)
		return
	}

	if !m.attachIfCurrent(op, string(token)) {
		return
	}

	identity, err := m.client.Me(ctx)
	if err != nil {
		m.log.Warn(ctx, "persisted session rejected, purging token", "error", err)
		m.settle(ctx, op, Anonymous(), func(ctx context.Context) error {
			m.client.ClearToken()
			return m.purgeSession(ctx)
		})
		return
	}

	if m.settle(ctx, op, Authenticated(*identity), nil) {
		m.log.Info(ctx, "session restored", "user", identity.UserID)
	}
}

// ExchangeSessionID trades a one-time identifier from the external login
// flow for a bearer token. At most one exchange attempt is made per call;
// the identifier is spent server-side whatever the outcome, so callers must
// obtain a fresh one before retrying.
//
// On success the token is persisted, attached to the pipeline, and the
// state settles authenticated, atomically. On failure nothing is persisted
// or attached and the state settles anonymous. The returned error exists
// only so the caller can show a message; the state transition already
// happened either way.
func (m *Manager) ExchangeSessionID(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return common.ErrEmptySessionID
	}

	op := m.begin()

	res, err := m.client.ExchangeSession(ctx, sessionID)
	if err != nil {
		m.log.Warn(ctx, "session exchange failed", "error", err)
		m.settle(ctx, op, Anonymous(), nil)
		return fmt.Errorf("exchange error: %w", err)
	}

	applied := m.settle(ctx, op, Authenticated(res.Identity), func(ctx context.Context) error {
		err := m.meta.InTx(ctx, func(ctx context.Context, r metadata.Repository) error {
			if err := r.Set(ctx, common.SessionTokenKey, []byte(res.Token)); err != nil {
				return err
			}
			return r.Set(ctx, common.SessionUserKey, []byte(res.Identity.UserID))
		})
		if err != nil {
			return err
		}
		m.client.SetToken(res.Token)
		return nil
	})
	if applied {
		m.log.Info(ctx, "session established", "user", res.Identity.UserID)
	}
	return nil
}

// Logout invalidates the session. The backend notification is best-effort:
// its failure is logged and ignored. The persisted token is always removed,
// the pipeline credential always detached, and the state always settles
// anonymous.
func (m *Manager) Logout(ctx context.Context) {
	op := m.begin()

	// Notify the backend while the credential is still attached.
	if err := m.client.Logout(ctx); err != nil {
		m.log.Warn(ctx, "remote logout failed, proceeding locally", "error", err)
	}

	m.settle(ctx, op, Anonymous(), func(ctx context.Context) error {
		m.client.ClearToken()
		if err := m.purgeSession(ctx); err != nil {
			m.log.Warn(ctx, "failed to delete persisted session", "error", err)
		}
		// Local logout never fails.
		return nil
	})
	m.log.Info(ctx, "logged out")
}

// purgeSession removes the persisted token and its bookkeeping in one
// transaction, so a token row can never outlive its owner row or vice versa.
func (m *Manager) purgeSession(ctx context.Context) error {
	return m.meta.InTx(ctx, func(ctx context.Context, r metadata.Repository) error {
		if err := r.Delete(ctx, common.SessionTokenKey); err != nil {
			return err
		}
		return r.Delete(ctx, common.SessionUserKey)
	})
}
