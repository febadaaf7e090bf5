package models

import "time"

// OrderItem is one purchased line on an order. Price and Subtotal are frozen
// at checkout time so later catalog edits never change past orders.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`       // Unit price at time of purchase.
	Subtotal  float64 `bson:"subtotal" json:"subtotal"` // Price * Quantity.
}

// Order represents a placed order with its denormalized totals.
// Invariant: Subtotal + ShippingCost + Tax - Discount == Total. The checkout
// service is the single writer of these fields; readers only display them.
type Order struct {
	ID              string      `bson:"id" json:"id"`                     // Unique order identifier (UUID).
	OrderNumber     string      `bson:"order_number" json:"order_number"` // Human-readable order reference.
	UserID          string      `bson:"user_id" json:"user_id"`           // Owning account.
	Items           []OrderItem `bson:"items" json:"items"`
	ShippingAddress Address     `bson:"shipping_address" json:"shipping_address"`
	Subtotal        float64     `bson:"subtotal" json:"subtotal"`
	ShippingCost    float64     `bson:"shipping_cost" json:"shipping_cost"`
	Discount        float64     `bson:"discount" json:"discount"`
	Tax             float64     `bson:"tax" json:"tax"`
	Total           float64     `bson:"total" json:"total"`
	Payment         PaymentInfo `bson:"payment" json:"payment"`
	Status          string      `bson:"status" json:"status"` // e.g., "placed", "shipped", "delivered"
	Note            string      `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `bson:"updated_at" json:"updated_at"`
}
