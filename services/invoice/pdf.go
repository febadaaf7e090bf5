package invoice

import (
	"bytes"
	"fmt"
	"strconv"

	"mercato/models"

	"github.com/jung-kurt/gofpdf"
)

// Fixed A4 layout constants. All positions are literal coordinates in mm.
const (
	pageLeft   = 15.0
	pageRight  = 195.0
	tableWidth = pageRight - pageLeft

	colItemW  = 90.0
	colQtyW   = 20.0
	colPriceW = 35.0
	colTotalW = 35.0

	rowH = 8.0
)

// RenderPDF lays out the invoice on a fixed-size A4 page and returns the
// complete document bytes. The whole page is assembled into an in-memory
// buffer; the caller only ever sees finished output or an error, never a
// partial document.
func RenderPDF(rec *models.InvoiceRecord, currency string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	drawHeader(pdf, rec)
	drawInfoBlocks(pdf, rec)
	y := drawItemTable(pdf, rec, currency)
	y = drawTotals(pdf, rec, currency, y)
	drawNotes(pdf, rec, y)
	drawFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

// drawHeader renders the company block on the left and the INVOICE title with
// its identifiers on the right, closed off by a horizontal rule.
func drawHeader(pdf *gofpdf.Fpdf, rec *models.InvoiceRecord) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetXY(pageLeft, 15)
	pdf.CellFormat(110, 8, rec.Company.Name, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(41, 128, 185)
	pdf.SetXY(pageLeft+110, 13)
	pdf.CellFormat(70, 10, "INVOICE", "", 0, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(pageLeft, 23)
	pdf.CellFormat(110, 5, rec.Company.Address, "", 2, "L", false, 0, "")
	pdf.CellFormat(110, 5, rec.Company.Phone, "", 2, "L", false, 0, "")
	pdf.CellFormat(110, 5, rec.Company.Email, "", 2, "L", false, 0, "")

	pdf.SetXY(pageLeft+110, 25)
	pdf.CellFormat(70, 5, "Invoice #: "+rec.InvoiceNumber, "", 2, "R", false, 0, "")
	pdf.CellFormat(70, 5, "Order #: "+rec.OrderNumber, "", 2, "R", false, 0, "")
	pdf.CellFormat(70, 5, "Date: "+rec.IssueDate.Format("02 Jan 2006"), "", 2, "R", false, 0, "")

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pageLeft, 44, pageRight, 44)
}

// drawInfoBlocks renders the bill-to and payment blocks side by side.
func drawInfoBlocks(pdf *gofpdf.Fpdf, rec *models.InvoiceRecord) {
	const top = 50.0
	const rightX = pageLeft + 105

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(41, 128, 185)
	pdf.SetXY(pageLeft, top)
	pdf.CellFormat(90, 5, "BILL TO", "", 0, "L", false, 0, "")
	pdf.SetXY(rightX, top)
	pdf.CellFormat(75, 5, "PAYMENT", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)

	// City line carries the zip only when one is present.
	cityLine := rec.Customer.City
	if rec.Customer.Zip != "" {
		cityLine += " " + rec.Customer.Zip
	}

	pdf.SetXY(pageLeft, top+6)
	pdf.CellFormat(90, 5, rec.Customer.Name, "", 2, "L", false, 0, "")
	pdf.CellFormat(90, 5, rec.Customer.Address, "", 2, "L", false, 0, "")
	pdf.CellFormat(90, 5, cityLine, "", 2, "L", false, 0, "")
	pdf.CellFormat(90, 5, rec.Customer.Email, "", 2, "L", false, 0, "")
	if rec.Customer.Phone != "" {
		pdf.CellFormat(90, 5, rec.Customer.Phone, "", 2, "L", false, 0, "")
	}

	pdf.SetXY(rightX, top+6)
	pdf.CellFormat(75, 5, "Method: "+rec.Payment.Method, "", 2, "L", false, 0, "")
	pdf.CellFormat(75, 5, "Status: "+rec.Payment.Status, "", 2, "L", false, 0, "")
	if rec.Payment.TransactionID != "" {
		pdf.CellFormat(75, 5, "Transaction: "+rec.Payment.TransactionID, "", 2, "L", false, 0, "")
	}
}

// drawItemTable renders the colored header row and alternating-shaded item
// rows, returning the y position after the last row.
func drawItemTable(pdf *gofpdf.Fpdf, rec *models.InvoiceRecord, currency string) float64 {
	y := 92.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(pageLeft, y)
	pdf.CellFormat(colItemW, rowH, "Item", "", 0, "L", true, 0, "")
	pdf.CellFormat(colQtyW, rowH, "Qty", "", 0, "C", true, 0, "")
	pdf.CellFormat(colPriceW, rowH, "Unit Price", "", 0, "R", true, 0, "")
	pdf.CellFormat(colTotalW, rowH, "Amount", "", 1, "R", true, 0, "")
	y += rowH

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	for i, item := range rec.Items {
		shaded := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		pdf.SetXY(pageLeft, y)
		pdf.CellFormat(colItemW, rowH, item.Name, "", 0, "L", shaded, 0, "")
		pdf.CellFormat(colQtyW, rowH, strconv.Itoa(item.Quantity), "", 0, "C", shaded, 0, "")
		pdf.CellFormat(colPriceW, rowH, FormatAmount(currency, item.Price), "", 0, "R", shaded, 0, "")
		pdf.CellFormat(colTotalW, rowH, FormatAmount(currency, item.Subtotal), "", 1, "R", shaded, 0, "")
		y += rowH
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pageLeft, y, pageRight, y)
	return y + 4
}

// drawTotals renders the right-aligned totals block. Discount and tax rows
// appear only when non-zero; the grand total row is highlighted.
func drawTotals(pdf *gofpdf.Fpdf, rec *models.InvoiceRecord, currency string, y float64) float64 {
	const labelW = 40.0
	const valueW = 35.0
	x := pageRight - labelW - valueW

	writeRow := func(label, value string) {
		pdf.SetXY(x, y)
		pdf.CellFormat(labelW, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, 7, value, "", 1, "R", false, 0, "")
		y += 7
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	writeRow("Subtotal", FormatAmount(currency, rec.Subtotal))
	writeRow("Shipping", FormatAmount(currency, rec.ShippingCost))
	if rec.Discount > 0 {
		writeRow("Discount", "-"+FormatAmount(currency, rec.Discount))
	}
	if rec.Tax > 0 {
		writeRow("Tax", FormatAmount(currency, rec.Tax))
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(x, y+1)
	pdf.CellFormat(labelW, 9, "TOTAL", "", 0, "R", true, 0, "")
	pdf.CellFormat(valueW, 9, FormatAmount(currency, rec.Total), "", 1, "R", true, 0, "")
	return y + 14
}

// drawNotes renders the optional free-text note block.
func drawNotes(pdf *gofpdf.Fpdf, rec *models.InvoiceRecord, y float64) {
	if rec.Note == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(41, 128, 185)
	pdf.SetXY(pageLeft, y+4)
	pdf.CellFormat(tableWidth, 5, "Notes", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetX(pageLeft)
	pdf.MultiCell(tableWidth, 5, rec.Note, "", "L", false)
}

// drawFooter renders the fixed courtesy line at the bottom of the page.
func drawFooter(pdf *gofpdf.Fpdf) {
	pdf.SetY(-25)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(tableWidth, 5, "Thank you for your business!", "", 1, "C", false, 0, "")
	pdf.CellFormat(tableWidth, 5, "This is a computer-generated invoice and requires no signature.", "", 1, "C", false, 0, "")
}
