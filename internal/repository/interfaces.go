package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdateCart replaces the user's cart items
	UpdateCart(ctx context.Context, userID uuid.UUID, items []domain.CartItem) error
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// Create creates a new product
	Create(ctx context.Context, product *domain.Product) error
	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// GetByIDs retrieves products by a list of IDs
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Product, error)
	// GetAll retrieves every product
	GetAll(ctx context.Context) ([]*domain.Product, error)
	// GetFeatured retrieves all featured products
	GetFeatured(ctx context.Context) ([]*domain.Product, error)
	// GetByCategory retrieves products in a category
	GetByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	// GetRandomSample retrieves up to limit products in random order
	GetRandomSample(ctx context.Context, limit int) ([]*domain.Product, error)
	// SetFeatured updates the featured flag and returns the updated product
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*domain.Product, error)
	// Update updates a product
	Update(ctx context.Context, product *domain.Product) error
	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error
}

// CouponRepository defines the interface for coupon data access
type CouponRepository interface {
	// GetActiveByUserID retrieves the user's active coupon
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*domain.Coupon, error)
	// GetByCodeAndUserID retrieves an active coupon by code for a user
	GetByCodeAndUserID(ctx context.Context, code string, userID uuid.UUID) (*domain.Coupon, error)
	// Deactivate marks a coupon inactive
	Deactivate(ctx context.Context, id uuid.UUID) error
	// Replace deletes the user's existing coupon and inserts a new one
	Replace(ctx context.Context, coupon *domain.Coupon) error
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Create inserts a new order
	Create(ctx context.Context, order *domain.Order) error
	// GetBySessionID retrieves an order by its checkout session ID
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error)
}

// SessionStore persists refresh sessions keyed by user ID
type SessionStore interface {
	// Put stores the refresh token for a user with the given TTL,
	// replacing any existing session
	Put(ctx context.Context, userID uuid.UUID, refreshToken string, ttl time.Duration) error
	// Get returns the stored refresh token, or empty string when no
	// session exists
	Get(ctx context.Context, userID uuid.UUID) (string, error)
	// Delete removes the user's session
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AnalyticsRepository aggregates storefront totals
type AnalyticsRepository interface {
	// Summary returns user, product and order totals
	Summary(ctx context.Context) (*domain.AnalyticsSummary, error)
}

// ProductCache caches product listings
type ProductCache interface {
	// GetFeatured returns cached featured products, or nil on a miss
	GetFeatured(ctx context.Context) ([]*domain.Product, error)
	// SetFeatured stores the featured products listing
	SetFeatured(ctx context.Context, products []*domain.Product) error
}
