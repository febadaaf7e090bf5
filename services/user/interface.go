package user

import (
	userRepo "mercato/database/repository/user"
	"mercato/models"
)

type UserService interface {
	// Registration & authentication
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)

	// Account management
	GetUserByID(userID string) (*models.User, error)
	UpdateAddress(userID string, address models.Address) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegistrationRequest carries the fields needed to open an account.
type RegistrationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required,min=8"`
}

// AuthResponse contains the account's ID, token, and display details.
type AuthResponse struct {
	ID    string      `json:"id"`
	Token string      `json:"token"`
	Name  string      `json:"name,omitempty"`
	Email string      `json:"email,omitempty"`
	Role  models.Role `json:"role"`
}
