// Package session owns the authentication lifecycle of the client: it
// bootstraps from the persisted token, exchanges one-time session
// identifiers, and is the single source of truth for "who is the current
// user". It is the only component allowed to touch the persisted token and
// the pipeline credential.
package session

import "github.com/vipclub/vipclub-cli/internal/client/models"

// Kind is the settled arm of the authentication state.
type Kind string

const (
	// KindUnresolved is the initial state, before the startup check
	// completes. No routing decision may be made while here.
	KindUnresolved Kind = "unresolved"

	// KindAnonymous means no valid token.
	KindAnonymous Kind = "anonymous"

	// KindAuthenticated means a valid token resolved to an identity.
	KindAuthenticated Kind = "authenticated"
)

// State is a tagged variant over unresolved/anonymous/authenticated with the
// identity payload only on the authenticated arm. The resolving flag marks a
// bootstrap or exchange in flight; routing treats it the same as unresolved.
//
// States are immutable values; construct them with Unresolved, Anonymous, or
// Authenticated so a half-populated identity can never be observed.
type State struct {
	kind      Kind
	resolving bool
	identity  *models.Identity
}

// Unresolved returns the initial state.
func Unresolved() State {
	return State{kind: KindUnresolved}
}

// Anonymous returns the settled no-session state.
func Anonymous() State {
	return State{kind: KindAnonymous}
}

// Authenticated returns the settled state carrying id.
func Authenticated(id models.Identity) State {
	return State{kind: KindAuthenticated, identity: &id}
}

// Kind reports the variant arm.
func (s State) Kind() Kind {
	if s.kind == "" {
		return KindUnresolved
	}
	return s.kind
}

// Resolving reports whether a bootstrap or exchange is in flight.
func (s State) Resolving() bool {
	return s.resolving
}

// Settled reports whether routing decisions may be made from this state.
func (s State) Settled() bool {
	return !s.resolving && s.Kind() != KindUnresolved
}

// Identity returns the authenticated identity. ok is false on every arm
// except authenticated.
func (s State) Identity() (models.Identity, bool) {
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

func (s State) withResolving(v bool) State {
	s.resolving = v
	return s
}
