// Package guard decides whether the current session may enter a screen.
// The decision function is pure: it never touches session state (clearing
// an expired session is the transport's job) and has no side effects beyond
// the returned decision.
package guard

import "github.com/shelfhub/shelfhub/internal/client/session"

// Redirect targets for denied navigation.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Meta is a route's static access requirements.
type Meta struct {
	RequiresAuth  bool
	RequiresAdmin bool
}

// State is the slice of session state the guard consults.
type State struct {
	Authenticated bool
	Role          string
}

// StateOf projects a session store into guard input.
func StateOf(s *session.Store) State {
	st := State{Authenticated: s.IsAuthenticated()}
	if u := s.User(); u != nil {
		st.Role = u.Role
	}
	return st
}

// Decision is either an allow or a redirect to RedirectTo.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide evaluates the rules in order: unauthenticated access to a
// protected route redirects to the login screen; a non-admin entering an
// admin route is sent home; everything else is allowed.
func Decide(meta Meta, state State) Decision {
	if meta.RequiresAuth && !state.Authenticated {
		return Decision{RedirectTo: LoginPath}
	}
	if meta.RequiresAdmin && state.Role != session.RoleAdmin {
		return Decision{RedirectTo: HomePath}
	}
	return Decision{Allow: true}
}
