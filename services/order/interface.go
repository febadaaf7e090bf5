package order

import (
	orderRepo "mercato/database/repository/order"
	productRepo "mercato/database/repository/product"
	userRepo "mercato/database/repository/user"
	"mercato/models"
)

type OrderService interface {
	// Checkout validates the cart, computes all totals, reserves stock,
	// initiates payment and persists the order.
	Checkout(userID string, req CheckoutRequest) (*models.Order, error)
	// GetOrderByID retrieves one order, enforcing owner-or-elevated access.
	GetOrderByID(requesterID string, role models.Role, orderID string) (*models.Order, error)
	// ListUserOrders returns the requester's own orders, newest first.
	ListUserOrders(userID string) ([]models.Order, error)
	// UpdateStatus moves an order through its fulfilment states (admin only,
	// enforced at the route level).
	UpdateStatus(orderID, status string) error
}

// DefaultOrderService is the production implementation.
type DefaultOrderService struct {
	Repo        orderRepo.OrderRepository
	ProductRepo productRepo.ProductRepository
	UserRepo    userRepo.UserRepository
	Payments    PaymentGateway
	Confirmer   ConfirmationEnqueuer
}

// CheckoutRequest is the payload for placing an order.
type CheckoutRequest struct {
	Items           []CheckoutItem  `json:"items" binding:"required,min=1"`
	ShippingAddress *models.Address `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required"`
	DiscountCode    string          `json:"discountCode"`
	Note            string          `json:"note"`
}

// CheckoutItem references a product and quantity in the cart.
type CheckoutItem struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// ConfirmationEnqueuer schedules the post-checkout confirmation delivery.
// Satisfied by the asynq-backed task client in cron.
type ConfirmationEnqueuer interface {
	EnqueueOrderConfirmation(orderID string) error
}
