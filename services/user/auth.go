package user

import (
	"context"
	"fmt"
	"time"

	"mercato/models"
	"mercato/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of an issued auth token.
const tokenTTL = 72 * time.Hour

// Register creates a new customer account and signs it in.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if existing != nil {
		return nil, EmailTakenError{Email: req.Email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Role:         models.RoleCustomer,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account registered", zap.String("id", usr.ID), zap.String("email", usr.Email))
	return s.issueToken(usr)
}

// Authenticate verifies the email/password pair and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if usr == nil {
		return nil, InvalidCredentialsError{}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, InvalidCredentialsError{}
	}
	return s.issueToken(usr)
}

// issueToken signs a JWT for the account, persists its hash as the account's
// current token and primes the auth cache.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, string(usr.Role), tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(usr.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		cacheKey := utils.AuthCachePrefix + usr.ID
		_ = authCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err()
	}

	return &AuthResponse{
		ID:    usr.ID,
		Token: token,
		Name:  usr.Name,
		Email: usr.Email,
		Role:  usr.Role,
	}, nil
}
