package invoice

import (
	"testing"
	"time"

	"mercato/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *models.InvoiceRecord {
	return &models.InvoiceRecord{
		InvoiceNumber: "INV-202608-A1B2C3",
		OrderNumber:   "ORD-1700000000000",
		IssueDate:     time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
		Company: models.CompanyInfo{
			Name:    "Mercato Retail Ltd",
			Address: "14 Market Lane, Nairobi",
			Phone:   "+254 700 000000",
			Email:   "billing@mercato.example",
		},
		Customer: models.CustomerInfo{
			Name:    "Alex Mwangi",
			Email:   "alex@example.com",
			Address: "8 Riverside Drive",
			City:    "Nairobi",
			Zip:     "00100",
		},
		Items: []models.InvoiceItem{
			{Name: "Headphones", Quantity: 1, Price: 2499, Subtotal: 2499},
		},
		Subtotal:     2499,
		ShippingCost: 100,
		Discount:     0,
		Tax:          0,
		Total:        2599,
		Payment:      models.PaymentInfo{Method: "card", Status: "paid"},
	}
}

func TestRenderPDFProducesCompleteDocument(t *testing.T) {
	rec := sampleRecord()

	out, err := RenderPDF(rec, "$")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// A finished PDF starts with the magic header and ends with EOF marker.
	require.True(t, len(out) > 1000)
	assert.Equal(t, "%PDF", string(out[:4]))
	assert.Contains(t, string(out[len(out)-32:]), "%%EOF")
}

func TestRenderHTMLWorkedExample(t *testing.T) {
	rec := sampleRecord()

	out, err := RenderHTML(rec, "$")
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, "INV-202608-A1B2C3")
	assert.Contains(t, doc, "ORD-1700000000000")
	assert.Contains(t, doc, "Headphones")
	assert.Contains(t, doc, "$2,499.00")
	assert.Contains(t, doc, "$100.00")
	assert.Contains(t, doc, "$2,599.00")

	// No discount or tax applies, so neither row is rendered.
	assert.NotContains(t, doc, "Discount")
	assert.NotContains(t, doc, "Tax")
	// Nothing was paid by transaction reference or left in notes.
	assert.NotContains(t, doc, "Transaction:")
	assert.NotContains(t, doc, "Notes")
}

func TestRenderHTMLConditionalRows(t *testing.T) {
	rec := sampleRecord()
	rec.Discount = 259.9
	rec.Tax = 415.84
	rec.Note = "Deliver after 5pm."
	rec.Payment.TransactionID = "pi_789"

	out, err := RenderHTML(rec, "$")
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, "Discount")
	assert.Contains(t, doc, "-$259.90")
	assert.Contains(t, doc, "Tax")
	assert.Contains(t, doc, "$415.84")
	assert.Contains(t, doc, "Deliver after 5pm.")
	assert.Contains(t, doc, "Transaction: pi_789")
}

func TestRenderHTMLZipOnlyWhenPresent(t *testing.T) {
	rec := sampleRecord()

	out, err := RenderHTML(rec, "$")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Nairobi 00100")

	rec.Customer.Zip = ""
	out, err = RenderHTML(rec, "$")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<p>Nairobi</p>")
	assert.NotContains(t, string(out), "Nairobi 00100")
}

func TestRenderHTMLEscapesUserText(t *testing.T) {
	rec := sampleRecord()
	rec.Customer.Name = `<script>alert("x")</script>`

	out, err := RenderHTML(rec, "$")
	require.NoError(t, err)

	doc := string(out)
	assert.NotContains(t, doc, "<script>alert")
	assert.Contains(t, doc, "&lt;script&gt;")
}

func TestRenderHTMLFooterAndHeaderSections(t *testing.T) {
	rec := sampleRecord()

	out, err := RenderHTML(rec, "$")
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, "Mercato Retail Ltd")
	assert.Contains(t, doc, "INVOICE")
	assert.Contains(t, doc, "BILL TO")
	assert.Contains(t, doc, "PAYMENT")
	assert.Contains(t, doc, "Thank you for your business!")
}

func TestRenderPDFConditionalRowsMatchHTMLPolicy(t *testing.T) {
	// The PDF stream is compressed so row presence is asserted indirectly:
	// documents with and without the optional rows must differ in layout.
	base := sampleRecord()
	withExtras := sampleRecord()
	withExtras.Discount = 100
	withExtras.Tax = 50
	withExtras.Note = "Gift wrap, please."

	plain, err := RenderPDF(base, "$")
	require.NoError(t, err)
	extras, err := RenderPDF(withExtras, "$")
	require.NoError(t, err)

	assert.NotEqual(t, plain, extras)
	assert.Greater(t, len(extras), len(plain))
}
