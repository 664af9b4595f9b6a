package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	users       map[uuid.UUID]*domain.User
	emailIndex  map[string]*domain.User
	createError error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:      make(map[uuid.UUID]*domain.User),
		emailIndex: make(map[string]*domain.User),
	}
}

func (r *mockUserRepository) add(user *domain.User) {
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if r.createError != nil {
		return r.createError
	}
	r.add(user)
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.emailIndex[email], nil
}

func (r *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := r.emailIndex[email]
	return exists, nil
}

func (r *mockUserRepository) UpdateCart(ctx context.Context, userID uuid.UUID, items []domain.CartItem) error {
	if user := r.users[userID]; user != nil {
		user.CartItems = items
	}
	return nil
}

// mockSessionStore is a mock implementation of SessionStore
type mockSessionStore struct {
	tokens map[uuid.UUID]string
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{tokens: make(map[uuid.UUID]string)}
}

func (s *mockSessionStore) Put(ctx context.Context, userID uuid.UUID, refreshToken string, ttl time.Duration) error {
	s.tokens[userID] = refreshToken
	return nil
}

func (s *mockSessionStore) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.tokens[userID], nil
}

func (s *mockSessionStore) Delete(ctx context.Context, userID uuid.UUID) error {
	delete(s.tokens, userID)
	return nil
}

// mockProductRepository is a mock implementation of ProductRepository
type mockProductRepository struct {
	products map[uuid.UUID]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[uuid.UUID]*domain.Product)}
}

func (r *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *mockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return r.products[id], nil
}

func (r *mockProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Product, error) {
	result := []*domain.Product{}
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *mockProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	result := []*domain.Product{}
	for _, p := range r.products {
		result = append(result, p)
	}
	return result, nil
}

func (r *mockProductRepository) GetFeatured(ctx context.Context) ([]*domain.Product, error) {
	result := []*domain.Product{}
	for _, p := range r.products {
		if p.IsFeatured {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *mockProductRepository) GetByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	result := []*domain.Product{}
	for _, p := range r.products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *mockProductRepository) GetRandomSample(ctx context.Context, limit int) ([]*domain.Product, error) {
	result := []*domain.Product{}
	for _, p := range r.products {
		if len(result) == limit {
			break
		}
		result = append(result, p)
	}
	return result, nil
}

func (r *mockProductRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	p.IsFeatured = featured
	return p, nil
}

func (r *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

// mockProductCache is a mock implementation of ProductCache
type mockProductCache struct {
	featured []*domain.Product
	hits     int
	misses   int
}

func newMockProductCache() *mockProductCache {
	return &mockProductCache{}
}

func (c *mockProductCache) GetFeatured(ctx context.Context) ([]*domain.Product, error) {
	if c.featured == nil {
		c.misses++
		return nil, nil
	}
	c.hits++
	return c.featured, nil
}

func (c *mockProductCache) SetFeatured(ctx context.Context, products []*domain.Product) error {
	c.featured = products
	return nil
}

// mockCouponRepository is a mock implementation of CouponRepository
type mockCouponRepository struct {
	coupons map[uuid.UUID]*domain.Coupon
}

func newMockCouponRepository() *mockCouponRepository {
	return &mockCouponRepository{coupons: make(map[uuid.UUID]*domain.Coupon)}
}

func (r *mockCouponRepository) GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*domain.Coupon, error) {
	for _, c := range r.coupons {
		if c.UserID == userID && c.IsActive {
			return c, nil
		}
	}
	return nil, nil
}

func (r *mockCouponRepository) GetByCodeAndUserID(ctx context.Context, code string, userID uuid.UUID) (*domain.Coupon, error) {
	for _, c := range r.coupons {
		if c.Code == code && c.UserID == userID && c.IsActive {
			return c, nil
		}
	}
	return nil, nil
}

func (r *mockCouponRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	if c, ok := r.coupons[id]; ok {
		c.IsActive = false
	}
	return nil
}

func (r *mockCouponRepository) Replace(ctx context.Context, coupon *domain.Coupon) error {
	for id, c := range r.coupons {
		if c.UserID == coupon.UserID {
			delete(r.coupons, id)
		}
	}
	r.coupons[coupon.ID] = coupon
	return nil
}

// mockOrderRepository is a mock implementation of OrderRepository
type mockOrderRepository struct {
	orders map[string]*domain.Order
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[string]*domain.Order)}
}

func (r *mockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if _, exists := r.orders[order.StripeSessionID]; exists {
		return nil
	}
	r.orders[order.StripeSessionID] = order
	return nil
}

func (r *mockOrderRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	return r.orders[sessionID], nil
}
