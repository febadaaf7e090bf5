package user

import (
	"fmt"

	"mercato/models"
	"mercato/utils"

	"go.uber.org/zap"
)

// GetUserByID retrieves an account by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", userID, err)
	}
	return usr, nil
}

// UpdateAddress replaces the account's default shipping address.
func (s *DefaultUserService) UpdateAddress(userID string, address models.Address) (*models.User, error) {
	logger := utils.GetLogger()

	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", userID, err)
	}
	usr.Address = address
	if err := s.Repo.Update(usr); err != nil {
		return nil, fmt.Errorf("failed to update account %s: %w", userID, err)
	}

	logger.Debug("Account address updated", zap.String("id", userID))
	return usr, nil
}
