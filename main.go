// File: mercato/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mercato/config"
	"mercato/cron"
	"mercato/database"
	orderRepoPkg "mercato/database/repository/order"
	productRepoPkg "mercato/database/repository/product"
	userRepoPkg "mercato/database/repository/user"
	"mercato/handlers"
	"mercato/middleware"
	"mercato/models"
	"mercato/routes"
	"mercato/services/admin"
	"mercato/services/catalog"
	invoiceSvc "mercato/services/invoice"
	orderSvc "mercato/services/order"
	"mercato/services/user"
	"mercato/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: product image storage unavailable: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	productRepo := productRepoPkg.NewMongoProductRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()

	// Background confirmation queue.
	taskClient := cron.NewTaskClient()
	defer taskClient.Close()
	cron.InitOrderConfirmationWorker(orderRepo, userRepo)

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: productRepo,
	}
	orderService := &orderSvc.DefaultOrderService{
		Repo:        orderRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Payments:    orderSvc.StripeGateway{},
		Confirmer:   taskClient,
	}
	invoiceService := &invoiceSvc.DefaultInvoiceService{
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Company: models.CompanyInfo{
			Name:    config.AppConfig.CompanyName,
			Address: config.AppConfig.CompanyAddress,
			Phone:   config.AppConfig.CompanyPhone,
			Email:   config.AppConfig.CompanyEmail,
		},
		Currency: config.AppConfig.CurrencySymbol,
	}
	adminService := &admin.DefaultAdminService{
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	}

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	adminHandler := handlers.NewAdminHandler(adminService)
	storageHandler := handlers.NewStorageHandler(storageService, catalogService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,

		// Account endpoints.
		GetProfileHandler:    userHandler.GetProfileHandler,
		UpdateAddressHandler: userHandler.UpdateAddressHandler,

		// Catalog endpoints.
		ListProductsHandler:  productHandler.ListProductsHandler,
		GetProductHandler:    productHandler.GetProductHandler,
		CreateProductHandler: productHandler.CreateProductHandler,
		UpdateProductHandler: productHandler.UpdateProductHandler,
		DeleteProductHandler: productHandler.DeleteProductHandler,

		// Order endpoints.
		CheckoutHandler:          orderHandler.CheckoutHandler,
		ListMyOrdersHandler:      orderHandler.ListMyOrdersHandler,
		GetOrderHandler:          orderHandler.GetOrderHandler,
		UpdateOrderStatusHandler: orderHandler.UpdateOrderStatusHandler,

		// Invoice endpoints.
		DownloadInvoiceHandler: invoiceHandler.DownloadInvoiceHandler,
		ViewInvoiceHandler:     invoiceHandler.ViewInvoiceHandler,
		InvoiceDataHandler:     invoiceHandler.InvoiceDataHandler,

		// Admin endpoints.
		GetStoreStatsHandler:      adminHandler.GetStoreStatsHandler,
		UploadProductImageHandler: storageHandler.UploadProductImageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
