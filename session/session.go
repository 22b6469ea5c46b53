package session

// Session is the client-resident authentication state. At most one
// session is resident at a time; the presence of a non-empty
// AccessToken is the sole signal the rest of the client uses to treat
// the user as logged in. The client performs no local validation of
// token shape beyond an optional unverified claims peek.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"` // absent in the OTP flow
	Role         Role   `json:"user_role"`
	DisplayName  string `json:"user_name"`
}

// LoggedIn reports whether the session carries an access token.
func (s *Session) LoggedIn() bool {
	return s != nil && s.AccessToken != ""
}

// HasRefreshToken reports whether silent re-authentication is possible.
func (s *Session) HasRefreshToken() bool {
	return s != nil && s.RefreshToken != ""
}
