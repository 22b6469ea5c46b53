package session

// Store defines the interface for session persistence. Implementations
// must treat Save as a wholesale overwrite of any resident session and
// Clear as idempotent: clearing an empty store is a no-op, not an
// error.
type Store interface {
	// Save makes the given session the resident one, replacing any
	// previous session.
	Save(s *Session) error

	// Current returns the resident session, or nil when none is
	// resident.
	Current() (*Session, error)

	// Clear removes the resident session. Calling Clear on an empty
	// store succeeds.
	Clear() error
}

// GuardRoute decides where a protected page mount should land: absent
// a logged-in session it redirects to login, otherwise to the
// dashboard the session's role dispatches to.
func GuardRoute(s *Session) string {
	if !s.LoggedIn() {
		return LoginRoute
	}
	return s.Role.DashboardRoute()
}
