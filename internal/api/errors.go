package api

import "fmt"

// RequestError is a non-2xx response from the API. Message carries the
// server's "detail" field when one was present, otherwise a generic message
// derived from the status code.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// NetworkError is a transport-level failure: no HTTP response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("api: network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
