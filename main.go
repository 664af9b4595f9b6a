package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RuslanKralin/e-commerce-store/internal/di"
	"github.com/RuslanKralin/e-commerce-store/internal/middleware"
	"github.com/RuslanKralin/e-commerce-store/pkg/config"
	"github.com/RuslanKralin/e-commerce-store/pkg/database"
	"github.com/RuslanKralin/e-commerce-store/pkg/logger"
	"github.com/RuslanKralin/e-commerce-store/pkg/redis"
	"github.com/RuslanKralin/e-commerce-store/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if cfg.App.Debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting e-commerce store...")

	ctx := context.Background()

	tel, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	})
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Telemetry init failed: %v", err))
	}

	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	redisClient, err := redis.NewClient(ctx, &redis.Config{
		Host:          cfg.Redis.Host,
		Port:          cfg.Redis.Port,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		PoolSize:      cfg.Redis.PoolSize,
		MinIdleConns:  cfg.Redis.MinIdleConns,
		DialTimeout:   cfg.Redis.DialTimeout,
		ReadTimeout:   cfg.Redis.ReadTimeout,
		WriteTimeout:  cfg.Redis.WriteTimeout,
		MaxRetries:    3,
		RetryInterval: time.Second,
	})
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Redis connection failed: %v", err))
	}
	defer redisClient.Close()
	appLog.Info("Redis connected")

	container, err := di.NewContainer(ctx, cfg, db, redisClient)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Failed to build container: %v", err))
	}

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, container)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		appLog.Info(fmt.Sprintf("Store listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		appLog.Warn(fmt.Sprintf("Telemetry shutdown failed: %v", err))
	}

	appLog.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, c *di.Container) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger.Get()))
	router.Use(middleware.CORS(cfg.Client.URL))
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
	}

	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)

	requireAuth := middleware.RequireAuth(c.AuthService)
	requireAdmin := middleware.RequireAdmin()

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
		{
			auth.POST("/register", c.AuthHandler.Register)
			auth.POST("/login", c.AuthHandler.Login)
			auth.POST("/logout", c.AuthHandler.Logout)
			auth.POST("/refresh", c.AuthHandler.Refresh)
			auth.GET("/profile", requireAuth, c.AuthHandler.GetProfile)
		}

		products := v1.Group("/products")
		{
			products.GET("/featured", c.ProductHandler.GetFeatured)
			products.GET("/recommendations", c.ProductHandler.GetRecommendations)
			products.GET("/category/:category", c.ProductHandler.GetByCategory)

			products.GET("", requireAuth, requireAdmin, c.ProductHandler.GetAll)
			products.POST("", requireAuth, requireAdmin, c.ProductHandler.Create)
			products.PATCH("/:id", requireAuth, requireAdmin, c.ProductHandler.Update)
			products.PATCH("/:id/featured", requireAuth, requireAdmin, c.ProductHandler.ToggleFeatured)
			products.DELETE("/:id", requireAuth, requireAdmin, c.ProductHandler.Delete)
		}

		cart := v1.Group("/cart", requireAuth)
		{
			cart.GET("", c.CartHandler.GetCart)
			cart.POST("", c.CartHandler.AddToCart)
			cart.PUT("/:id", c.CartHandler.UpdateQuantity)
			cart.DELETE("", c.CartHandler.RemoveFromCart)
		}

		coupons := v1.Group("/coupons", requireAuth)
		{
			coupons.GET("", c.CouponHandler.GetCoupon)
			coupons.POST("/validate", c.CouponHandler.ValidateCoupon)
		}

		payments := v1.Group("/payments", requireAuth)
		{
			payments.POST("/create-checkout-session", c.PaymentHandler.CreateCheckoutSession)
			payments.POST("/checkout-success", c.PaymentHandler.CheckoutSuccess)
		}

		v1.GET("/analytics", requireAuth, requireAdmin, c.AnalyticsHandler.GetSummary)
	}

	return router
}
