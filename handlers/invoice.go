package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"mercato/middleware"
	invoiceSvc "mercato/services/invoice"
	"mercato/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler serves the three invoice read operations. Each handler
// resolves the requester identity itself and the service re-verifies access
// on every call; no entry point trusts another's check.
type InvoiceHandler struct {
	Service invoiceSvc.InvoiceService
}

// NewInvoiceHandler creates an InvoiceHandler with the given service.
func NewInvoiceHandler(svc invoiceSvc.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: svc}
}

// DownloadInvoiceHandler handles GET /api/invoices/:orderId/download.
// Responds with the complete PDF and a force-download disposition.
func (h *InvoiceHandler) DownloadInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	orderID := c.Param("orderId")

	requesterID, role, ok := middleware.RequesterIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	rec, pdf, err := h.Service.InvoicePDF(requesterID, role, orderID)
	if err != nil {
		logger.Warn("Invoice download failed", zap.String("orderId", orderID), zap.Error(err))
		utils.JSONError(c, invoiceSvc.HTTPStatus(err), "Could not generate invoice", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", rec.OrderNumber))
	c.Header("Content-Length", strconv.Itoa(len(pdf)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ViewInvoiceHandler handles GET /api/invoices/:orderId/view.
// Responds with a self-contained HTML document for inline display.
func (h *InvoiceHandler) ViewInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	orderID := c.Param("orderId")

	requesterID, role, ok := middleware.RequesterIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	_, doc, err := h.Service.InvoiceHTML(requesterID, role, orderID)
	if err != nil {
		logger.Warn("Invoice view failed", zap.String("orderId", orderID), zap.Error(err))
		utils.JSONError(c, invoiceSvc.HTTPStatus(err), "Could not generate invoice", err.Error())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// InvoiceDataHandler handles GET /api/invoices/:orderId/data.
// Responds with the raw InvoiceRecord in a JSON envelope.
func (h *InvoiceHandler) InvoiceDataHandler(c *gin.Context) {
	logger := utils.GetLogger()
	orderID := c.Param("orderId")

	requesterID, role, ok := middleware.RequesterIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	rec, err := h.Service.InvoiceData(requesterID, role, orderID)
	if err != nil {
		logger.Warn("Invoice data fetch failed", zap.String("orderId", orderID), zap.Error(err))
		utils.JSONError(c, invoiceSvc.HTTPStatus(err), "Could not fetch invoice data", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Invoice data fetched successfully",
		"data":    rec,
	})
}
