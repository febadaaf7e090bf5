package handlers

import (
	"net/http"

	"mercato/middleware"
	"mercato/models"
	userSvc "mercato/services/user"
	"mercato/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves authenticated account endpoints.
type UserHandler struct {
	Service userSvc.UserService
}

// NewUserHandler creates a UserHandler with the given service.
func NewUserHandler(svc userSvc.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// GetProfileHandler handles GET /api/users/me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, _, ok := middleware.RequesterIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	usr, err := h.Service.GetUserByID(userID)
	if err != nil {
		logger.Error("Account not found", zap.String("id", userID), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Account not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateAddressHandler handles PUT /api/users/me/address.
func (h *UserHandler) UpdateAddressHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, _, ok := middleware.RequesterIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid address payload", err.Error())
		return
	}

	usr, err := h.Service.UpdateAddress(userID, address)
	if err != nil {
		logger.Error("Address update failed", zap.String("id", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Address update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, usr)
}
