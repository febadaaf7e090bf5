package order

import (
	"fmt"

	"mercato/models"
)

// GetOrderByID retrieves one order, enforcing owner-or-elevated access.
func (s *DefaultOrderService) GetOrderByID(requesterID string, role models.Role, orderID string) (*models.Order, error) {
	ord, err := s.Repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if ord.UserID != requesterID && !role.Elevated() {
		return nil, AccessDeniedError{OrderID: orderID}
	}
	return ord, nil
}

// ListUserOrders returns the requester's own orders, newest first.
func (s *DefaultOrderService) ListUserOrders(userID string) ([]models.Order, error) {
	orders, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// UpdateStatus moves an order through its fulfilment states.
func (s *DefaultOrderService) UpdateStatus(orderID, status string) error {
	switch status {
	case "placed", "shipped", "delivered", "cancelled":
	default:
		return NewCheckoutError("invalid order status %s", status)
	}
	return s.Repo.UpdateStatus(orderID, status)
}
