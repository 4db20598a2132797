// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrRouteNotFound indicates that no handler is registered for the request path.
	ErrRouteNotFound = errors.New("Not Found")
	// ErrMethodNotAllowed indicates that the path exists but not for the request method.
	ErrMethodNotAllowed = errors.New("Method Not Allowed")
)
