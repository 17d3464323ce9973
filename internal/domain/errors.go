package domain

import "errors"

var (
	// ErrLoginRequired aborts a cart mutation before any network call when no
	// auth token is present.
	ErrLoginRequired = errors.New("login required")

	// ErrDuplicateItem aborts an ADD for a product already in the cart; the
	// user must adjust the quantity instead.
	ErrDuplicateItem = errors.New("item already in cart")

	// ErrUnauthenticated is returned when the backend rejects the auth token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrBackendUnreachable is returned when no HTTP response was received at
	// all (connection refused, timeout, DNS failure).
	ErrBackendUnreachable = errors.New("backend unreachable")
)

// APIError is a structured 4xx rejection from the backend. Message carries the
// server-provided text and is shown to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// ValidationError is a client-side input check failure raised before any
// network call is made. The string is the exact user-facing message.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
