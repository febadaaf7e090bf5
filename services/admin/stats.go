package admin

import (
	"fmt"

	"mercato/utils"

	"go.uber.org/zap"
)

// GetStoreStats assembles the dashboard summary from live aggregates.
// A store with no rated products or no paid orders reports real zeros;
// no placeholder figures are ever substituted.
func (s *DefaultAdminService) GetStoreStats() (*StoreStats, error) {
	logger := utils.GetLogger()

	users, err := s.UserRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	products, err := s.ProductRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	orders, err := s.OrderRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	revenue, err := s.OrderRepo.PaidRevenue()
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue: %w", err)
	}
	rating, err := s.ProductRepo.AverageRating()
	if err != nil {
		return nil, fmt.Errorf("failed to compute average rating: %w", err)
	}

	logger.Debug("Store stats computed",
		zap.Int64("users", users),
		zap.Int64("orders", orders),
		zap.Float64("revenue", revenue))

	return &StoreStats{
		Users:         users,
		Products:      products,
		Orders:        orders,
		PaidRevenue:   revenue,
		AverageRating: rating,
	}, nil
}
