package invoice

import (
	"errors"
	"fmt"
	"time"

	orderRepo "mercato/database/repository/order"
	"mercato/models"
	"mercato/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// loadOrder fetches the order, translating a missing document into the
// service's NotFound failure.
func (s *DefaultInvoiceService) loadOrder(orderID string) (*models.Order, error) {
	order, err := s.OrderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrNotFound) {
			return nil, NotFoundError{OrderID: orderID}
		}
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	return order, nil
}

// buildRecord flattens an order plus its owning account into an
// InvoiceRecord. Pure read: totals are copied, never recomputed.
func (s *DefaultInvoiceService) buildRecord(order *models.Order) (*models.InvoiceRecord, error) {
	logger := utils.GetLogger()

	proj := bson.M{"id": 1, "name": 1, "email": 1, "phone_number": 1}
	account, err := s.UserRepo.GetByIDWithProjection(order.UserID, proj)
	if err != nil {
		logger.Error("Failed to resolve order account", zap.String("orderID", order.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to resolve account for order %s: %w", order.ID, err)
	}

	// Bill-to name comes from the shipping address override, falling back to
	// the account's display name.
	ship := order.ShippingAddress
	customerName := ship.Name
	if customerName == "" {
		customerName = account.Name
	}
	customerPhone := ship.PhoneNumber
	if customerPhone == "" {
		customerPhone = account.PhoneNumber
	}

	items := make([]models.InvoiceItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, models.InvoiceItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Subtotal: it.Subtotal,
		})
	}

	rec := &models.InvoiceRecord{
		InvoiceNumber: NewInvoiceNumber(),
		OrderNumber:   order.OrderNumber,
		IssueDate:     time.Now(),
		Company:       s.Company,
		Customer: models.CustomerInfo{
			Name:    customerName,
			Email:   account.Email,
			Phone:   customerPhone,
			Address: ship.Street,
			City:    ship.City,
			Zip:     ship.Zip,
		},
		Items:        items,
		Subtotal:     order.Subtotal,
		ShippingCost: order.ShippingCost,
		Discount:     order.Discount,
		Tax:          order.Tax,
		Total:        order.Total,
		Payment:      order.Payment,
		Note:         order.Note,
	}
	return rec, nil
}
