package di

import (
	"context"
	"fmt"

	"github.com/RuslanKralin/e-commerce-store/internal/gateway"
	"github.com/RuslanKralin/e-commerce-store/internal/handler"
	"github.com/RuslanKralin/e-commerce-store/internal/repository"
	"github.com/RuslanKralin/e-commerce-store/internal/service"
	"github.com/RuslanKralin/e-commerce-store/internal/storage"
	"github.com/RuslanKralin/e-commerce-store/pkg/config"
	"github.com/RuslanKralin/e-commerce-store/pkg/database"
	"github.com/RuslanKralin/e-commerce-store/pkg/redis"
)

// Container holds all dependencies for the store
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	CouponRepo   repository.CouponRepository
	OrderRepo     repository.OrderRepository
	AnalyticsRepo repository.AnalyticsRepository
	SessionStore  repository.SessionStore
	ProductCache  repository.ProductCache

	// Integrations
	Gateway    gateway.CheckoutGateway
	ImageStore storage.ImageStore

	// Services
	TokenService    service.TokenService
	AuthService     service.AuthService
	ProductService  service.ProductService
	CartService     service.CartService
	CouponService    service.CouponService
	CheckoutService  service.CheckoutService
	AnalyticsService service.AnalyticsService

	// Handlers
	HealthHandler  *handler.HealthHandler
	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	CouponHandler    *handler.CouponHandler
	PaymentHandler   *handler.PaymentHandler
	AnalyticsHandler *handler.AnalyticsHandler
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, db *database.PostgresDB, redisClient *redis.Client) (*Container, error) {
	c := &Container{
		DB:    db,
		Redis: redisClient,
	}

	// Repositories
	c.UserRepo = repository.NewPostgresUserRepository(db.Pool())
	c.ProductRepo = repository.NewPostgresProductRepository(db.Pool())
	c.CouponRepo = repository.NewPostgresCouponRepository(db.Pool())
	c.OrderRepo = repository.NewPostgresOrderRepository(db.Pool())
	c.AnalyticsRepo = repository.NewPostgresAnalyticsRepository(db.Pool())
	c.SessionStore = repository.NewRedisSessionStore(redisClient)
	c.ProductCache = repository.NewRedisProductCache(redisClient)

	// Integrations
	if cfg.Stripe.SecretKey != "" {
		gw, err := gateway.NewStripeGateway(&gateway.StripeGatewayConfig{
			SecretKey:   cfg.Stripe.SecretKey,
			Environment: cfg.Stripe.Environment,
			Currency:    cfg.Stripe.Currency,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to init stripe gateway: %w", err)
		}
		c.Gateway = gw
	} else {
		c.Gateway = gateway.NewMockGateway()
	}

	if cfg.Storage.Bucket != "" {
		store, err := storage.NewS3ImageStore(ctx, storage.S3Config{
			Bucket:      cfg.Storage.Bucket,
			Region:      cfg.Storage.Region,
			AccessKeyID: cfg.Storage.AccessKeyID,
			SecretKey:   cfg.Storage.SecretKey,
			Endpoint:    cfg.Storage.Endpoint,
			BaseURL:     cfg.Storage.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to init image store: %w", err)
		}
		c.ImageStore = store
	} else {
		c.ImageStore = storage.NewMockImageStore()
	}

	// Services
	c.TokenService = service.NewTokenService(&service.TokenServiceConfig{
		AccessSecret:    cfg.JWT.AccessSecret,
		RefreshSecret:   cfg.JWT.RefreshSecret,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
		Issuer:          cfg.JWT.Issuer,
	})
	c.AuthService = service.NewAuthService(c.UserRepo, c.SessionStore, c.TokenService, &service.AuthServiceConfig{})
	c.ProductService = service.NewProductService(c.ProductRepo, c.ProductCache, c.ImageStore)
	c.CartService = service.NewCartService(c.UserRepo, c.ProductRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo)
	c.CheckoutService = service.NewCheckoutService(c.Gateway, c.OrderRepo, c.CouponService, c.UserRepo, &service.CheckoutServiceConfig{
		SuccessURL: cfg.Client.URL + "/purchase-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  cfg.Client.URL + "/purchase-cancel",
	})
	c.AnalyticsService = service.NewAnalyticsService(c.AnalyticsRepo)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(db, redisClient)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService, handler.CookieConfig{
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
		Secure:          cfg.IsProduction(),
	})
	c.ProductHandler = handler.NewProductHandler(c.ProductService)
	c.CartHandler = handler.NewCartHandler(c.CartService)
	c.CouponHandler = handler.NewCouponHandler(c.CouponService)
	c.PaymentHandler = handler.NewPaymentHandler(c.CheckoutService)
	c.AnalyticsHandler = handler.NewAnalyticsHandler(c.AnalyticsService)

	return c, nil
}
