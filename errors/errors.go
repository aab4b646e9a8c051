// Package errors defines the error taxonomy surfaced by the coordination core.
//
// NotFound, Forbidden and Conflict are expected outcomes of invalid input or
// contention and are always returned to the caller, never retried internally.
// Dependency covers failures of external collaborators (video bridge, message
// broker) and is a distinct category: the transport layer maps the four to
// 404/403/409/502.
package errors

import "fmt"

var (
	ErrNotFound   = fmt.Errorf("not found")
	ErrForbidden  = fmt.Errorf("forbidden")
	ErrConflict   = fmt.Errorf("conflict")
	ErrDependency = fmt.Errorf("dependency failure")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)
