// ABOUTME: Error taxonomy for classified API responses.
// ABOUTME: NoSession, Unauthorized, APIError, and NetworkError per call.
package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession is returned when an authenticated call is attempted with
	// no token present. Callers should gate on the session instead of
	// reaching this.
	ErrNoSession = errors.New("not logged in")

	// ErrUnauthorized is returned when the server rejects the token. The
	// session has already been expired by the time the caller sees it.
	ErrUnauthorized = errors.New("session expired")
)

// APIError is a non-401 rejection from the server: validation failures,
// ownership violations, missing entities. Detail comes from the response
// body's detail field and is shown to the user verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// NetworkError is a transport-level failure; the request may never have
// reached the server.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("unable to connect to the server: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
