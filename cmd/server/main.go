package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adminapp "github.com/shopcore/backend/internal/application/admin"
	catalogapp "github.com/shopcore/backend/internal/application/catalog"
	identityapp "github.com/shopcore/backend/internal/application/identity"
	shoppingapp "github.com/shopcore/backend/internal/application/shopping"
	sitecontentapp "github.com/shopcore/backend/internal/application/sitecontent"
	"github.com/shopcore/backend/internal/infrastructure/auth"
	"github.com/shopcore/backend/internal/infrastructure/config"
	"github.com/shopcore/backend/internal/infrastructure/logger"
	"github.com/shopcore/backend/internal/infrastructure/persistence"
	"github.com/shopcore/backend/internal/interfaces/http/handler"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	cartRepo := persistence.NewGormCartLineRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	layoutRepo := persistence.NewGormLayoutRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	userService := identityapp.NewUserService(userRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	cartService := shoppingapp.NewCartService(cartRepo, productRepo)
	orderService := shoppingapp.NewOrderService(orderRepo, cartRepo, productRepo, orderRepo)
	dashboardService := adminapp.NewDashboardService(productRepo, categoryRepo, orderRepo, userRepo)
	bulkService := adminapp.NewBulkService(productRepo, orderRepo)
	layoutService := sitecontentapp.NewLayoutService(layoutRepo)
	settingService := sitecontentapp.NewSettingService(settingRepo)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	adminHandler := handler.NewAdminHandler(dashboardService, bulkService)
	layoutHandler := handler.NewLayoutHandler(layoutService)
	settingHandler := handler.NewSettingHandler(settingService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside the API group)
	engine.GET("/health", healthHandler(db))

	api := engine.Group("/api")

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	authed := api.Group("/auth", middleware.RequireAuth(jwtService))
	authed.GET("/me", authHandler.Me)
	authed.PUT("/me", authHandler.UpdateMe)
	authed.PUT("/me/password", authHandler.ChangePassword)

	// Cart routes: open to authenticated users and anonymous sessions
	// alike; the session token is minted here when absent
	cart := api.Group("/cart",
		middleware.OptionalAuth(jwtService),
		middleware.CartSession(cfg.Cart.SessionHeader),
	)
	cart.GET("", cartHandler.Get)
	cart.POST("", cartHandler.Add)
	cart.PUT("/:id", cartHandler.UpdateLine)
	cart.DELETE("/clear", cartHandler.Clear)
	cart.DELETE("/:id", cartHandler.RemoveLine)

	// Order routes: checkout works for anonymous sessions, listing and
	// updates require a token
	api.POST("/orders",
		middleware.OptionalAuth(jwtService),
		middleware.CartSession(cfg.Cart.SessionHeader),
		orderHandler.Checkout,
	)
	orders := api.Group("/orders", middleware.RequireAuth(jwtService))
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", middleware.RequireAdmin(), orderHandler.Update)

	// Catalog routes: public reads, admin writes
	api.GET("/products", productHandler.List)
	api.GET("/products/featured", productHandler.Featured)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.Get)

	catalogAdmin := api.Group("", middleware.RequireAuth(jwtService), middleware.RequireAdmin())
	catalogAdmin.POST("/products", productHandler.Create)
	catalogAdmin.PUT("/products/:id", productHandler.Update)
	catalogAdmin.DELETE("/products/:id", productHandler.Delete)
	catalogAdmin.POST("/categories", categoryHandler.Create)
	catalogAdmin.PUT("/categories/:id", categoryHandler.Update)
	catalogAdmin.DELETE("/categories/:id", categoryHandler.Delete)

	// User management routes
	users := api.Group("/users", middleware.RequireAuth(jwtService))
	users.GET("", middleware.RequireAdmin(), userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", middleware.RequireAdmin(), userHandler.Delete)

	// Admin routes: dashboard, bulk ops, site content (reads included)
	admin := api.Group("/admin", middleware.RequireAuth(jwtService), middleware.RequireAdmin())
	admin.GET("/dashboard/stats", adminHandler.DashboardStats)
	admin.POST("/products/bulk-update", adminHandler.BulkUpdateProducts)
	admin.POST("/orders/bulk-update", adminHandler.BulkUpdateOrders)
	admin.GET("/layout", layoutHandler.List)
	admin.POST("/layout", layoutHandler.Create)
	admin.PUT("/layout/:id", layoutHandler.Update)
	admin.DELETE("/layout/:id", layoutHandler.Delete)
	admin.GET("/settings", settingHandler.List)
	admin.POST("/settings", settingHandler.Create)
	admin.PUT("/settings/:id", settingHandler.Update)
	admin.DELETE("/settings/:id", settingHandler.Delete)

	// Create HTTP server with config
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for the health check endpoint
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
