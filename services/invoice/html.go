package invoice

import (
	"bytes"
	"fmt"
	"html/template"

	"mercato/models"
)

// htmlView is the flattened, pre-formatted input handed to the HTML template.
// Amounts arrive already formatted so the template stays free of logic.
type htmlView struct {
	Record   *models.InvoiceRecord
	Date     string
	CityLine string
	Items    []htmlItem
	Subtotal string
	Shipping string
	Discount string // Empty when no discount applies.
	Tax      string // Empty when no tax applies.
	Total    string
}

type htmlItem struct {
	Name     string
	Quantity int
	Price    string
	Subtotal string
	Shaded   bool
}

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.Record.InvoiceNumber}}</title>
<style>
  body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #282828; margin: 40px; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #c8c8c8; padding-bottom: 16px; }
  .company h1 { margin: 0 0 6px 0; font-size: 20px; }
  .company p, .meta p { margin: 2px 0; font-size: 13px; color: #5a5a5a; }
  .meta { text-align: right; }
  .meta h2 { margin: 0 0 6px 0; font-size: 28px; color: #2980b9; }
  .blocks { display: flex; justify-content: space-between; margin-top: 24px; }
  .blocks h3 { font-size: 13px; color: #2980b9; margin: 0 0 6px 0; }
  .blocks p { margin: 2px 0; font-size: 13px; }
  table { width: 100%; border-collapse: collapse; margin-top: 24px; }
  th { background: #2980b9; color: #fff; text-align: left; padding: 8px; font-size: 13px; }
  th.num, td.num { text-align: right; }
  td { padding: 8px; font-size: 13px; }
  tr.shaded td { background: #f5f5f5; }
  .totals { margin-top: 16px; margin-left: auto; width: 280px; font-size: 13px; }
  .totals div { display: flex; justify-content: space-between; padding: 4px 8px; }
  .totals .grand { background: #2980b9; color: #fff; font-weight: bold; font-size: 15px; padding: 8px; }
  .notes { margin-top: 24px; font-size: 13px; color: #5a5a5a; }
  .notes h3 { font-size: 13px; color: #2980b9; margin-bottom: 6px; }
  .footer { margin-top: 48px; text-align: center; font-size: 12px; color: #969696; font-style: italic; }
</style>
</head>
<body>
  <div class="header">
    <div class="company">
      <h1>{{.Record.Company.Name}}</h1>
      <p>{{.Record.Company.Address}}</p>
      <p>{{.Record.Company.Phone}}</p>
      <p>{{.Record.Company.Email}}</p>
    </div>
    <div class="meta">
      <h2>INVOICE</h2>
      <p>Invoice #: {{.Record.InvoiceNumber}}</p>
      <p>Order #: {{.Record.OrderNumber}}</p>
      <p>Date: {{.Date}}</p>
    </div>
  </div>
  <div class="blocks">
    <div>
      <h3>BILL TO</h3>
      <p>{{.Record.Customer.Name}}</p>
      <p>{{.Record.Customer.Address}}</p>
      <p>{{.CityLine}}</p>
      <p>{{.Record.Customer.Email}}</p>
      {{if .Record.Customer.Phone}}<p>{{.Record.Customer.Phone}}</p>{{end}}
    </div>
    <div>
      <h3>PAYMENT</h3>
      <p>Method: {{.Record.Payment.Method}}</p>
      <p>Status: {{.Record.Payment.Status}}</p>
      {{if .Record.Payment.TransactionID}}<p>Transaction: {{.Record.Payment.TransactionID}}</p>{{end}}
    </div>
  </div>
  <table>
    <tr><th>Item</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Amount</th></tr>
    {{range .Items}}<tr{{if .Shaded}} class="shaded"{{end}}><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.Price}}</td><td class="num">{{.Subtotal}}</td></tr>
    {{end}}
  </table>
  <div class="totals">
    <div><span>Subtotal</span><span>{{.Subtotal}}</span></div>
    <div><span>Shipping</span><span>{{.Shipping}}</span></div>
    {{if .Discount}}<div><span>Discount</span><span>-{{.Discount}}</span></div>{{end}}
    {{if .Tax}}<div><span>Tax</span><span>{{.Tax}}</span></div>{{end}}
    <div class="grand"><span>TOTAL</span><span>{{.Total}}</span></div>
  </div>
  {{if .Record.Note}}<div class="notes"><h3>Notes</h3><p>{{.Record.Note}}</p></div>{{end}}
  <div class="footer">
    <p>Thank you for your business!</p>
    <p>This is a computer-generated invoice and requires no signature.</p>
  </div>
</body>
</html>
`))

// RenderHTML emits a self-contained styled HTML invoice for inline viewing.
// It applies the same conditional-row policy as the PDF renderer.
func RenderHTML(rec *models.InvoiceRecord, currency string) ([]byte, error) {
	cityLine := rec.Customer.City
	if rec.Customer.Zip != "" {
		cityLine += " " + rec.Customer.Zip
	}

	view := htmlView{
		Record:   rec,
		Date:     rec.IssueDate.Format("02 Jan 2006"),
		CityLine: cityLine,
		Subtotal: FormatAmount(currency, rec.Subtotal),
		Shipping: FormatAmount(currency, rec.ShippingCost),
		Total:    FormatAmount(currency, rec.Total),
	}
	if rec.Discount > 0 {
		view.Discount = FormatAmount(currency, rec.Discount)
	}
	if rec.Tax > 0 {
		view.Tax = FormatAmount(currency, rec.Tax)
	}
	for i, it := range rec.Items {
		view.Items = append(view.Items, htmlItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    FormatAmount(currency, it.Price),
			Subtotal: FormatAmount(currency, it.Subtotal),
			Shaded:   i%2 == 1,
		})
	}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("html template execution failed: %w", err)
	}
	return buf.Bytes(), nil
}
