package domain

// Session holds the authenticated user state. An empty token means logged out.
// Created on successful login, persisted in the local store, cleared on logout.
// Token invalidation after load (e.g. expiry) only surfaces when an API call
// is rejected.
type Session struct {
	Token    string
	Username string
}

// LoggedIn reports whether the session carries an auth token.
func (s Session) LoggedIn() bool { return s.Token != "" }
