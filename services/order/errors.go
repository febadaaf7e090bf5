package order

import "fmt"

// CheckoutError reports a cart problem the client can fix.
type CheckoutError struct {
	Message string
}

func (e CheckoutError) Error() string {
	return e.Message
}

// NewCheckoutError builds a CheckoutError with a formatted message.
func NewCheckoutError(format string, args ...any) error {
	return CheckoutError{Message: fmt.Sprintf(format, args...)}
}

// AccessDeniedError signals the requester may not view the order.
type AccessDeniedError struct {
	OrderID string
}

func (e AccessDeniedError) Error() string {
	return fmt.Sprintf("not authorized to view order %s", e.OrderID)
}
