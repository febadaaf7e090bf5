package handlers

import (
	userRepo "mercato/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every route handler plus the repositories the
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	// Needed by the auth middleware for token verification.
	UserRepo userRepo.UserRepository

	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// Account endpoints.
	GetProfileHandler    gin.HandlerFunc
	UpdateAddressHandler gin.HandlerFunc

	// Catalog endpoints.
	ListProductsHandler  gin.HandlerFunc
	GetProductHandler    gin.HandlerFunc
	CreateProductHandler gin.HandlerFunc
	UpdateProductHandler gin.HandlerFunc
	DeleteProductHandler gin.HandlerFunc

	// Order endpoints.
	CheckoutHandler          gin.HandlerFunc
	ListMyOrdersHandler      gin.HandlerFunc
	GetOrderHandler          gin.HandlerFunc
	UpdateOrderStatusHandler gin.HandlerFunc

	// Invoice endpoints.
	DownloadInvoiceHandler gin.HandlerFunc
	ViewInvoiceHandler     gin.HandlerFunc
	InvoiceDataHandler     gin.HandlerFunc

	// Admin endpoints.
	GetStoreStatsHandler      gin.HandlerFunc
	UploadProductImageHandler gin.HandlerFunc
}
