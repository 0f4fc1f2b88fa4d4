package session

import "fmt"

// NotAuthenticatedError means an operation required a credential that is
// absent. It is a local precondition failure: no network call was made.
type NotAuthenticatedError struct {
	Op string
}

func (e *NotAuthenticatedError) Error() string {
	return fmt.Sprintf("session: %s requires an authenticated session", e.Op)
}

// AuthenticationError means the server rejected the submitted credentials,
// or returned a success payload missing the expected token field. Both are
// a single fail path for callers; Err distinguishes them when wrapped.
type AuthenticationError struct {
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session: %s: %v", e.Reason, e.Err)
	}
	return "session: " + e.Reason
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
