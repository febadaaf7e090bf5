package order

import (
	"fmt"
	"math"
	"time"

	"mercato/models"
	"mercato/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pricing rules applied at checkout. This service is the single place where
// order arithmetic happens; everything downstream (order views, invoices)
// only displays the stored figures.
const (
	shippingFlatRate = 100.0
	freeShippingOver = 5000.0
	taxRate          = 0.0
)

// discountCodes maps promo codes to their fractional discount.
var discountCodes = map[string]float64{
	"WELCOME10": 0.10,
}

// Checkout validates the cart, freezes per-line prices, computes totals,
// reserves stock, initiates payment and persists the order.
func (s *DefaultOrderService) Checkout(userID string, req CheckoutRequest) (*models.Order, error) {
	logger := utils.GetLogger()

	usr, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account %s: %w", userID, err)
	}

	// Resolve the shipping address: explicit override or account default.
	shipTo := usr.Address
	if req.ShippingAddress != nil {
		shipTo = *req.ShippingAddress
	}
	if shipTo.Street == "" || shipTo.City == "" {
		return nil, NewCheckoutError("a shipping address with street and city is required")
	}

	// Freeze line items against the current catalog.
	items := make([]models.OrderItem, 0, len(req.Items))
	var subtotal float64
	for _, ci := range req.Items {
		product, err := s.ProductRepo.GetByID(ci.ProductID)
		if err != nil {
			return nil, NewCheckoutError("unknown product %s", ci.ProductID)
		}
		if product.Stock < ci.Quantity {
			return nil, NewCheckoutError("insufficient stock for %s", product.Name)
		}
		line := models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  ci.Quantity,
			Price:     product.Price,
			Subtotal:  round2(product.Price * float64(ci.Quantity)),
		}
		subtotal += line.Subtotal
		items = append(items, line)
	}
	subtotal = round2(subtotal)

	shipping := shippingFlatRate
	if subtotal >= freeShippingOver {
		shipping = 0
	}

	var discount float64
	if req.DiscountCode != "" {
		frac, ok := discountCodes[req.DiscountCode]
		if !ok {
			return nil, NewCheckoutError("unknown discount code %s", req.DiscountCode)
		}
		discount = round2(subtotal * frac)
	}

	tax := round2(subtotal * taxRate)
	total := round2(subtotal + shipping + tax - discount)

	// Reserve stock before taking payment. Reservations are released again
	// if any later step of the checkout fails.
	reserved := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		if err := s.ProductRepo.DecrementStock(it.ProductID, it.Quantity); err != nil {
			s.releaseStock(reserved)
			return nil, NewCheckoutError("insufficient stock for %s", it.Name)
		}
		reserved = append(reserved, it)
	}

	ord := &models.Order{
		ID:              uuid.New().String(),
		OrderNumber:     newOrderNumber(),
		UserID:          userID,
		Items:           items,
		ShippingAddress: shipTo,
		Subtotal:        subtotal,
		ShippingCost:    shipping,
		Discount:        discount,
		Tax:             tax,
		Total:           total,
		Status:          "placed",
		Note:            req.Note,
	}

	result, err := s.Payments.Charge(req.PaymentMethod, total, ord.OrderNumber)
	if err != nil {
		s.releaseStock(reserved)
		return nil, fmt.Errorf("payment failed for order %s: %w", ord.OrderNumber, err)
	}
	ord.Payment = models.PaymentInfo{
		Method:        req.PaymentMethod,
		Status:        result.Status,
		TransactionID: result.TransactionID,
	}

	if err := s.Repo.Create(ord); err != nil {
		s.releaseStock(reserved)
		return nil, fmt.Errorf("failed to persist order %s: %w", ord.OrderNumber, err)
	}

	if s.Confirmer != nil {
		if err := s.Confirmer.EnqueueOrderConfirmation(ord.ID); err != nil {
			// Confirmation delivery is best-effort; the order itself stands.
			logger.Warn("Failed to enqueue order confirmation", zap.String("order", ord.ID), zap.Error(err))
		}
	}

	logger.Info("Order placed",
		zap.String("order", ord.OrderNumber),
		zap.String("user", userID),
		zap.Float64("total", total))
	return ord, nil
}

// releaseStock returns reserved quantities to the catalog after a failed
// checkout. A release failure only gets logged; stock is reconciled out of
// band in that case.
func (s *DefaultOrderService) releaseStock(items []models.OrderItem) {
	logger := utils.GetLogger()
	for _, it := range items {
		if err := s.ProductRepo.IncrementStock(it.ProductID, it.Quantity); err != nil {
			logger.Error("Failed to release reserved stock",
				zap.String("product", it.ProductID),
				zap.Int("quantity", it.Quantity),
				zap.Error(err))
		}
	}
}

// newOrderNumber produces a human-readable order reference.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
