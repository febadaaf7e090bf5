package admin

import (
	orderRepo "mercato/database/repository/order"
	productRepo "mercato/database/repository/product"
	userRepo "mercato/database/repository/user"
)

// StoreStats is the admin dashboard summary.
type StoreStats struct {
	Users         int64   `json:"users"`
	Products      int64   `json:"products"`
	Orders        int64   `json:"orders"`
	PaidRevenue   float64 `json:"paid_revenue"`
	AverageRating float64 `json:"average_rating"`
}

type AdminService interface {
	GetStoreStats() (*StoreStats, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	UserRepo    userRepo.UserRepository
	ProductRepo productRepo.ProductRepository
	OrderRepo   orderRepo.OrderRepository
}
