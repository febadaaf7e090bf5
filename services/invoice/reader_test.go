package invoice

import (
	"testing"

	"mercato/models"

	"github.com/stretchr/testify/require"
)

func TestInvoiceDataSuccess(t *testing.T) {
	svc, ord := newTestService()

	rec, err := svc.InvoiceData("usr-1", models.RoleCustomer, ord.ID)
	require.NoError(t, err)

	require.Equal(t, ord.OrderNumber, rec.OrderNumber)
	require.Regexp(t, `^INV-\d{6}-[A-Z0-9]{6}$`, rec.InvoiceNumber)
	require.False(t, rec.IssueDate.IsZero())

	// Totals are copied verbatim and remain internally consistent.
	require.Equal(t, ord.Subtotal, rec.Subtotal)
	require.Equal(t, ord.ShippingCost, rec.ShippingCost)
	require.Equal(t, ord.Total, rec.Total)
	require.InDelta(t, rec.Total, rec.Subtotal+rec.ShippingCost+rec.Tax-rec.Discount, 0.001)

	// Line items keep source order and values.
	require.Len(t, rec.Items, 1)
	require.Equal(t, "Headphones", rec.Items[0].Name)
	require.Equal(t, 1, rec.Items[0].Quantity)
	require.Equal(t, 2499.0, rec.Items[0].Price)

	require.Equal(t, "card", rec.Payment.Method)
	require.Equal(t, "pi_123", rec.Payment.TransactionID)
}

func TestInvoiceDataCustomerNameFallsBackToAccount(t *testing.T) {
	svc, ord := newTestService()

	// No override name on the shipping address: the account name is used.
	rec, err := svc.InvoiceData("usr-1", models.RoleCustomer, ord.ID)
	require.NoError(t, err)
	require.Equal(t, "Alex Mwangi", rec.Customer.Name)
	require.Equal(t, "alex@example.com", rec.Customer.Email)
	require.Equal(t, "Nairobi", rec.Customer.City)
	require.Equal(t, "00100", rec.Customer.Zip)
}

func TestInvoiceDataShippingNameOverrides(t *testing.T) {
	svc, ord := newTestService()
	ord.ShippingAddress.Name = "Gift Recipient"
	ord.ShippingAddress.PhoneNumber = "+254 722 999888"

	rec, err := svc.InvoiceData("usr-1", models.RoleCustomer, ord.ID)
	require.NoError(t, err)
	require.Equal(t, "Gift Recipient", rec.Customer.Name)
	require.Equal(t, "+254 722 999888", rec.Customer.Phone)
	// Email always comes from the account.
	require.Equal(t, "alex@example.com", rec.Customer.Email)
}

func TestInvoiceDataUnknownOrder(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.InvoiceData("usr-1", models.RoleCustomer, "no-such-order")
	require.Error(t, err)

	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, 404, HTTPStatus(err))
}

func TestInvoiceDataForbiddenForStranger(t *testing.T) {
	svc, ord := newTestService()

	_, err := svc.InvoiceData("usr-2", models.RoleCustomer, ord.ID)
	require.Error(t, err)

	var forbidden ForbiddenError
	require.ErrorAs(t, err, &forbidden)
}

func TestInvoiceDataElevatedRoleSeesAnyOrder(t *testing.T) {
	svc, ord := newTestService()

	rec, err := svc.InvoiceData("admin-7", models.RoleAdmin, ord.ID)
	require.NoError(t, err)
	require.Equal(t, ord.OrderNumber, rec.OrderNumber)
}

func TestAllOperationsRejectUnknownOrder(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.InvoiceData("usr-1", models.RoleCustomer, "missing")
	require.ErrorAs(t, err, &NotFoundError{})

	_, _, err = svc.InvoicePDF("usr-1", models.RoleCustomer, "missing")
	require.ErrorAs(t, err, &NotFoundError{})

	_, _, err = svc.InvoiceHTML("usr-1", models.RoleCustomer, "missing")
	require.ErrorAs(t, err, &NotFoundError{})
}

func TestAllOperationsReverifyAccess(t *testing.T) {
	svc, ord := newTestService()

	_, err := svc.InvoiceData("usr-2", models.RoleCustomer, ord.ID)
	require.ErrorAs(t, err, &ForbiddenError{})

	_, _, err = svc.InvoicePDF("usr-2", models.RoleCustomer, ord.ID)
	require.ErrorAs(t, err, &ForbiddenError{})

	_, _, err = svc.InvoiceHTML("usr-2", models.RoleCustomer, ord.ID)
	require.ErrorAs(t, err, &ForbiddenError{})
}
