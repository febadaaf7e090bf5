package handlers

import (
	"net/http"

	adminSvc "mercato/services/admin"
	"mercato/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the reporting endpoints behind the admin middleware.
type AdminHandler struct {
	Service adminSvc.AdminService
}

// NewAdminHandler creates an AdminHandler with the given service.
func NewAdminHandler(svc adminSvc.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// GetStoreStatsHandler handles GET /api/admin/stats.
func (h *AdminHandler) GetStoreStatsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	stats, err := h.Service.GetStoreStats()
	if err != nil {
		logger.Error("Stats aggregation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not compute store stats", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Store stats fetched successfully",
		"data":    stats,
	})
}
