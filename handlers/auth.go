package handlers

import (
	"net/http"

	userSvc "mercato/services/user"
	"mercato/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration and sign-in.
type AuthHandler struct {
	Service userSvc.UserService
}

// NewAuthHandler creates an AuthHandler with the given service.
func NewAuthHandler(svc userSvc.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req userSvc.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		if _, ok := err.(userSvc.EmailTakenError); ok {
			utils.JSONError(c, http.StatusConflict, "Email already registered", err.Error())
			return
		}
		logger.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		if _, ok := err.(userSvc.InvalidCredentialsError); ok {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		logger.Error("Login failed", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}
