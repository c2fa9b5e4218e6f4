package main

import (
	"log"
	"time"

	"parcel_market/internal/auth"
	"parcel_market/internal/config"
	"parcel_market/internal/database"
	"parcel_market/internal/handlers"
	"parcel_market/internal/migrations"
	"parcel_market/internal/redis"
	"parcel_market/internal/repository"
	"parcel_market/internal/services"
	"parcel_market/pkg/payment"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize payment provider client
	paymentClient := payment.NewClient(cfg.PaymentAPIURL, cfg.PaymentSecretKey)

	// Token manager
	tokens := auth.NewManager(cfg.JWTSecret)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo, tokens)
	driverService := services.NewDriverService(driverRepo, tokens)
	orderService := services.NewOrderService(orderRepo, redisClient)
	assignmentService := services.NewAssignmentService(assignmentRepo, orderRepo, driverRepo, redisClient, cfg.CommissionRate)
	walletService := services.NewWalletService(walletRepo)
	withdrawalService := services.NewWithdrawalService(withdrawalRepo)
	adminService := services.NewAdminService(adminRepo, driverRepo, userRepo, driverService, tokens)
	paymentService := services.NewPaymentService(orderRepo, orderService, paymentClient, redisClient, cfg.PaymentSuccessURL, cfg.PaymentCancelURL)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	driverHandler := handlers.NewDriverHandler(driverService, orderService, assignmentService, walletService, withdrawalService)
	userHandler := handlers.NewUserHandler(userService, orderService)
	adminHandler := handlers.NewAdminHandler(adminService, orderService, assignmentService, withdrawalService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Setup routes
	router := gin.Default()
	router.Use(handlers.CORS(cfg.AllowedOrigins))

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.POST("/create-order", auth.OptionalUser(tokens), orderHandler.CreateOrder)
			orders.GET("/order/:id", orderHandler.GetOrder)
			orders.GET("/track/:trackingNumber", orderHandler.TrackOrder)
		}

		drivers := api.Group("/drivers")
		{
			drivers.POST("/register", driverHandler.Register)
			drivers.POST("/login", driverHandler.Login)

			authed := drivers.Group("", auth.RequireRole(tokens, auth.RoleDriver))
			authed.GET("/available-orders", driverHandler.AvailableOrders)
			authed.POST("/accept-order", driverHandler.AcceptOrder)
			authed.POST("/mark-delivered", driverHandler.MarkDelivered)
			authed.GET("/current-orders", driverHandler.CurrentOrders)
			authed.GET("/wallet", driverHandler.Wallet)
			authed.POST("/withdrawals", driverHandler.RequestWithdrawal)
			authed.GET("/withdrawals", driverHandler.WithdrawalHistory)
			authed.GET("/withdrawals/:id", driverHandler.WithdrawalInfo)
		}

		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/google-login", userHandler.GoogleLogin)

			authed := users.Group("", auth.RequireRole(tokens, auth.RoleUser))
			authed.GET("/orders", userHandler.MyOrders)
			authed.GET("/addresses", userHandler.Addresses)
			authed.POST("/addresses", userHandler.AddAddress)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)

			authed := admin.Group("", auth.RequireRole(tokens, auth.RoleAdmin))
			authed.GET("/drivers", adminHandler.ListDrivers)
			authed.POST("/drivers", adminHandler.CreateDriver)
			authed.PUT("/drivers/:id", adminHandler.UpdateDriver)
			authed.DELETE("/drivers/:id", adminHandler.DeleteDriver)
			authed.GET("/users", adminHandler.ListUsers)
			authed.DELETE("/users/:id", adminHandler.DeleteUser)
			authed.GET("/orders", adminHandler.ListOrders)
			authed.POST("/assign-driver", adminHandler.AssignDriver)
			authed.GET("/withdrawals", adminHandler.ListWithdrawals)
			authed.GET("/withdrawals/:id", adminHandler.GetWithdrawal)
			authed.PUT("/withdrawals/:id/status", adminHandler.UpdateWithdrawalStatus)
		}

		pay := api.Group("/pay")
		{
			pay.POST("/payment", paymentHandler.CreatePayment)
			pay.GET("/verify/:sessionId", paymentHandler.VerifyPayment)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
