package orderRepo

import (
	"errors"

	"mercato/models"
)

// ErrNotFound is returned when no order matches the requested ID.
var ErrNotFound = errors.New("order not found")

// OrderRepository defines methods for order data access.
type OrderRepository interface {
	// GetByID retrieves an order by its unique ID. Returns ErrNotFound when
	// no order with that ID exists.
	GetByID(id string) (*models.Order, error)
	// GetByUser retrieves all orders owned by the given account, newest first.
	GetByUser(userID string) ([]models.Order, error)
	// Create inserts a new order record.
	Create(order *models.Order) error
	// UpdateStatus changes the order's fulfilment status.
	UpdateStatus(id, status string) error
	// Count returns the total number of orders.
	Count() (int64, error)
	// PaidRevenue sums the totals of all paid orders. Returns zero when no
	// order has been paid.
	PaidRevenue() (float64, error)
}
