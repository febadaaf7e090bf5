package models

import "time"

// CompanyInfo is the seller identity block printed on every invoice.
// Sourced from configuration, never hardcoded.
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CustomerInfo is the bill-to block of an invoice, resolved from the order's
// shipping address with the account as fallback.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip,omitempty"`
}

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

// InvoiceRecord is a flat, renderer-agnostic snapshot of one order's billing
// data. It is built per request, handed to exactly one renderer (or returned
// as JSON) and discarded; it is never persisted or cached. Totals are copied
// from the order as-is — this type displays arithmetic, it never performs it.
type InvoiceRecord struct {
	InvoiceNumber string        `json:"invoice_number"`
	OrderNumber   string        `json:"order_number"`
	IssueDate     time.Time     `json:"issue_date"`
	Company       CompanyInfo   `json:"company"`
	Customer      CustomerInfo  `json:"customer"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	ShippingCost  float64       `json:"shipping_cost"`
	Discount      float64       `json:"discount"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	Payment       PaymentInfo   `json:"payment"`
	Note          string        `json:"note,omitempty"`
}
