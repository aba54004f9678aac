// Package routing decides navigation redirects from the authentication
// state. The decision is a pure function over an explicit route table, so
// screens are classified by configuration instead of name matching.
package routing

import "github.com/vipclub/vipclub-cli/internal/client/session"

// Route names a screen. The zero value is "no route".
type Route string

// Table classifies the application's screens. Protected routes require an
// authenticated session; Landing is the public entry screen an authenticated
// user is allowed to stay on.
type Table struct {
	Login     Route
	Home      Route
	Landing   Route
	Protected map[Route]bool
}

// DefaultTable mirrors the screens the application ships with.
func DefaultTable() Table {
	return Table{
		Login:   "login",
		Home:    "home",
		Landing: "index",
		Protected: map[Route]bool{
			"home":            true,
			"wallet":          true,
			"withdrawal":      true,
			"talent-register": true,
		},
	}
}

// Decide returns the redirect target for the given state and current route.
// ok is false when no redirect should happen: while the state is unresolved
// or resolving, when the current screen is already appropriate, or when the
// target equals the current route.
func Decide(t Table, st session.State, current Route) (Route, bool) {
	if !st.Settled() {
		return "", false
	}

	var target Route
	switch st.Kind() {
	case session.KindAnonymous:
		if t.Protected[current] {
			target = t.Login
		}
	case session.KindAuthenticated:
		if !t.Protected[current] && current != t.Landing {
			target = t.Home
		}
	}

	if target == "" || target == current {
		return "", false
	}
	return target, true
}

// Guard re-evaluates Decide on every state transition and navigation change
// and forwards the redirect to navigate. It holds the current route, so a
// redirect it issues immediately updates its own notion of "where we are".
type Guard struct {
	table    Table
	current  Route
	navigate func(Route)
}

// NewGuard builds a guard starting at the given route. navigate is called
// for every redirect decision; it must be idempotent.
func NewGuard(table Table, start Route, navigate func(Route)) *Guard {
	return &Guard{table: table, current: start, navigate: navigate}
}

// Current returns the route the guard believes is active.
func (g *Guard) Current() Route {
	return g.current
}

// OnState re-evaluates the guard against a new authentication state.
func (g *Guard) OnState(st session.State) {
	if target, ok := Decide(g.table, st, g.current); ok {
		g.current = target
		g.navigate(target)
	}
}

// OnNavigate records a navigation initiated elsewhere and re-evaluates,
// bouncing the user back if the new screen is not allowed for st.
func (g *Guard) OnNavigate(st session.State, to Route) {
	g.current = to
	g.OnState(st)
}
