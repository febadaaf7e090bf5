package invoice

import (
	orderRepo "mercato/database/repository/order"
	userRepo "mercato/database/repository/user"
	"mercato/models"
)

// InvoiceService exposes the three invoice read operations. Every operation
// independently loads the order, re-verifies the requester's access and
// builds a fresh InvoiceRecord; nothing is cached between calls.
type InvoiceService interface {
	// InvoiceData returns the raw InvoiceRecord for an order.
	InvoiceData(requesterID string, role models.Role, orderID string) (*models.InvoiceRecord, error)
	// InvoicePDF renders the order's invoice as a PDF document.
	InvoicePDF(requesterID string, role models.Role, orderID string) (*models.InvoiceRecord, []byte, error)
	// InvoiceHTML renders the order's invoice as a self-contained HTML document.
	InvoiceHTML(requesterID string, role models.Role, orderID string) (*models.InvoiceRecord, []byte, error)
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	OrderRepo orderRepo.OrderRepository
	UserRepo  userRepo.UserRepository
	Company   models.CompanyInfo // Injected seller identity, never hardcoded.
	Currency  string             // Glyph prefixed to every rendered amount.
}

// InvoiceData returns the raw InvoiceRecord for an order.
func (s *DefaultInvoiceService) InvoiceData(requesterID string, role models.Role, orderID string) (*models.InvoiceRecord, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := authorize(requesterID, role, order); err != nil {
		return nil, err
	}
	return s.buildRecord(order)
}

// InvoicePDF renders the order's invoice as a PDF document.
func (s *DefaultInvoiceService) InvoicePDF(requesterID string, role models.Role, orderID string) (*models.InvoiceRecord, []byte, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, nil, err
	}
	if err := authorize(requesterID, role, order); err != nil {
		return nil, nil, err
	}
	rec, err := s.buildRecord(order)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := RenderPDF(rec, s.Currency)
	if err != nil {
		return nil, nil, RenderError{Err: err}
	}
	return rec, pdf, nil
}

// InvoiceHTML renders the order's invoice as a self-contained HTML document.
func (s *DefaultInvoiceService) InvoiceHTML(requesterID string, role models.Role, orderID string) (*models.InvoiceRecord, []byte, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, nil, err
	}
	if err := authorize(requesterID, role, order); err != nil {
		return nil, nil, err
	}
	rec, err := s.buildRecord(order)
	if err != nil {
		return nil, nil, err
	}
	doc, err := RenderHTML(rec, s.Currency)
	if err != nil {
		return nil, nil, RenderError{Err: err}
	}
	return rec, doc, nil
}
