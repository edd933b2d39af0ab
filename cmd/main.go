package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"github.com/sirupsen/logrus"

	"shopmart/internal/caching"
	"shopmart/internal/config"
	"shopmart/internal/handlers"
	"shopmart/internal/jobs"
	"shopmart/internal/middleware"
	"shopmart/internal/repositories"
	"shopmart/internal/services"
	"shopmart/pkg/database"
)

const version = "1.0.0"

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = random.String(32)
		logrus.Warn("JWT_SECRET not set, using a generated secret; tokens will not survive restarts")
	}

	// Cache
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Object storage
	storageSvc, err := services.NewStorageService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		logrus.Fatalf("Failed to initialize object storage: %v", err)
	}
	if err := storageSvc.EnsureBucketExists(context.Background(), cfg.MinioBucket); err != nil {
		logrus.Fatalf("Failed to ensure bucket %s: %v", cfg.MinioBucket, err)
	}

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	categoryRepo := repositories.NewCategoryRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	statusRepo := repositories.NewProductStatusRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	orderItemRepo := repositories.NewOrderItemRepo(pool)

	// Services
	authSvc := services.NewAuthService(userRepo, jwtSecret)
	checkoutSvc := services.NewCheckoutService(pool)
	orderQuerySvc := services.NewOrderQueryService(orderRepo, orderItemRepo)
	productSvc := services.NewProductService(productRepo, cacheSvc, storageSvc, cfg.MinioBucket)
	categorySvc := services.NewCategoryService(categoryRepo)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc, cacheSvc)
	orderHandlers := handlers.NewOrderHandlers(checkoutSvc, orderQuerySvc)
	productHandlers := handlers.NewProductHandlers(productSvc)
	categoryHandlers := handlers.NewCategoryHandlers(categorySvc)
	statusHandlers := handlers.NewProductStatusHandlers(statusRepo)
	profileHandlers := handlers.NewProfileHandlers(userRepo)
	userHandlers := handlers.NewUserHandlers(userRepo)

	// Middleware
	jwtMiddleware := middleware.JWTMiddleware(jwtSecret)
	adminMiddleware := middleware.NewAdminMiddleware(userRepo)
	requireAdmin := adminMiddleware.RequireAdmin()

	// Background jobs
	stockAlerts, err := jobs.NewStockAlertJob(productRepo, cfg.LowStockThreshold)
	if err != nil {
		logrus.Fatalf("Failed to create stock alert job: %v", err)
	}
	stockAlerts.Start()
	defer stockAlerts.Stop()

	e := echo.New()

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", handlers.HealthCheck)
	e.GET("/health/ready", func(c echo.Context) error {
		return handlers.ReadinessCheck(c, pool)
	})

	api := e.Group("/api")

	// Authentication routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)

	// Public catalog reads
	api.GET("/products", productHandlers.ListProducts)
	api.GET("/products/:id", productHandlers.GetProduct)
	api.GET("/categories", categoryHandlers.ListCategories)
	api.GET("/categories/:id", categoryHandlers.GetCategory)
	api.GET("/product-statuses", statusHandlers.ListStatuses)
	api.GET("/product-statuses/:id", statusHandlers.GetStatus)

	// Authenticated routes
	protected := api.Group("", jwtMiddleware)

	protected.GET("/profile", profileHandlers.GetProfile)
	protected.PUT("/profile", profileHandlers.UpdateProfile)

	protected.POST("/orders", orderHandlers.CreateOrder)
	protected.GET("/orders/my", orderHandlers.GetMyOrders)
	protected.GET("/orders", orderHandlers.GetAllOrders, requireAdmin)
	protected.GET("/orders/:id", orderHandlers.GetOrderDetails)

	// Admin-only catalog writes
	protected.POST("/products", productHandlers.CreateProduct, requireAdmin)
	protected.PUT("/products/:id", productHandlers.UpdateProduct, requireAdmin)
	protected.DELETE("/products/:id", productHandlers.DeleteProduct, requireAdmin)
	protected.POST("/products/:id/image", productHandlers.UploadProductImage, requireAdmin)

	protected.POST("/categories", categoryHandlers.CreateCategory, requireAdmin)
	protected.PUT("/categories/:id", categoryHandlers.UpdateCategory, requireAdmin)
	protected.DELETE("/categories/:id", categoryHandlers.DeleteCategory, requireAdmin)

	protected.POST("/product-statuses", statusHandlers.CreateStatus, requireAdmin)
	protected.PUT("/product-statuses/:id", statusHandlers.UpdateStatus, requireAdmin)
	protected.DELETE("/product-statuses/:id", statusHandlers.DeleteStatus, requireAdmin)

	protected.GET("/users", userHandlers.ListUsers, requireAdmin)

	logrus.Infof("shopmart server v%s starting on port %s", version, cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", cfg.Port)))
}
