package handlers

import (
	"errors"
	"net/http"

	orderRepo "mercato/database/repository/order"
	"mercato/middleware"
	orderSvc "mercato/services/order"
	"mercato/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler serves checkout and order reads.
type OrderHandler struct {
	Service orderSvc.OrderService
}

// NewOrderHandler creates an OrderHandler with the given service.
func NewOrderHandler(svc orderSvc.OrderService) *OrderHandler {
	return &OrderHandler{Service: svc}
}

// CheckoutHandler handles POST /api/orders.
func (h *OrderHandler) CheckoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, _, ok := middleware.RequesterIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	var req orderSvc.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid checkout payload", err.Error())
		return
	}

	ord, err := h.Service.Checkout(userID, req)
	if err != nil {
		var ce orderSvc.CheckoutError
		if errors.As(err, &ce) {
			utils.JSONError(c, http.StatusBadRequest, "Checkout rejected", ce.Error())
			return
		}
		logger.Error("Checkout failed", zap.String("user", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Checkout failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, ord)
}

// ListMyOrdersHandler handles GET /api/orders.
func (h *OrderHandler) ListMyOrdersHandler(c *gin.Context) {
	userID, _, ok := middleware.RequesterIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	orders, err := h.Service.ListUserOrders(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not list orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderHandler handles GET /api/orders/:orderId.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	orderID := c.Param("orderId")

	requesterID, role, ok := middleware.RequesterIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	ord, err := h.Service.GetOrderByID(requesterID, role, orderID)
	if err != nil {
		switch {
		case errors.Is(err, orderRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Order not found", err.Error())
		default:
			var ae orderSvc.AccessDeniedError
			if errors.As(err, &ae) {
				utils.JSONError(c, http.StatusForbidden, "Access denied", ae.Error())
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Could not fetch order", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, ord)
}

// UpdateOrderStatusHandler handles PATCH /api/admin/orders/:orderId/status.
func (h *OrderHandler) UpdateOrderStatusHandler(c *gin.Context) {
	orderID := c.Param("orderId")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
		return
	}

	if err := h.Service.UpdateStatus(orderID, req.Status); err != nil {
		if errors.Is(err, orderRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Order not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Status update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}
