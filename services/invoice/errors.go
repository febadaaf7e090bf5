package invoice

import (
	"fmt"
	"net/http"
)

// NotFoundError signals that no order exists for the requested ID.
type NotFoundError struct {
	OrderID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("order %s not found", e.OrderID)
}

// HTTPStatus returns the status code this failure maps to.
func (e NotFoundError) HTTPStatus() int { return http.StatusNotFound }

// ForbiddenError signals that the requester may not view the order's invoice.
type ForbiddenError struct {
	OrderID string
}

func (e ForbiddenError) Error() string {
	return fmt.Sprintf("not authorized to view invoice for order %s", e.OrderID)
}

// HTTPStatus returns the status code this failure maps to.
func (e ForbiddenError) HTTPStatus() int { return http.StatusForbidden }

// RenderError wraps a document-writing failure. The underlying error is
// surfaced verbatim.
type RenderError struct {
	Err error
}

func (e RenderError) Error() string {
	return fmt.Sprintf("failed to render invoice: %v", e.Err)
}

func (e RenderError) Unwrap() error { return e.Err }

// HTTPStatus returns the status code this failure maps to.
func (e RenderError) HTTPStatus() int { return http.StatusInternalServerError }

// HTTPStatus maps a service error to its HTTP status code, defaulting to 500
// for failures without an explicit mapping.
func HTTPStatus(err error) int {
	type statusCarrier interface{ HTTPStatus() int }
	if sc, ok := err.(statusCarrier); ok {
		return sc.HTTPStatus()
	}
	return http.StatusInternalServerError
}
