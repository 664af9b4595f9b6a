package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/repository"
)

var ErrProductNotInCart = errors.New("product not in cart")

// CartProduct is a cart line joined with its product
type CartProduct struct {
	domain.Product
	Quantity int `json:"quantity"`
}

// CartService defines the interface for cart operations
type CartService interface {
	// GetCartProducts returns the user's cart lines joined with products
	GetCartProducts(ctx context.Context, user *domain.User) ([]*CartProduct, error)
	// AddToCart adds one unit of a product, or bumps the quantity when
	// the product is already in the cart
	AddToCart(ctx context.Context, user *domain.User, productID uuid.UUID) ([]domain.CartItem, error)
	// UpdateQuantity sets the quantity of a cart line, removing it at zero
	UpdateQuantity(ctx context.Context, user *domain.User, productID uuid.UUID, quantity int) ([]domain.CartItem, error)
	// RemoveFromCart removes a product line, or clears the cart when
	// productID is nil
	RemoveFromCart(ctx context.Context, user *domain.User, productID *uuid.UUID) ([]domain.CartItem, error)
}

// cartService implements CartService
type cartService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(userRepo repository.UserRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// GetCartProducts returns the user's cart lines joined with products.
// Lines whose product no longer exists are skipped.
func (s *cartService) GetCartProducts(ctx context.Context, user *domain.User) ([]*CartProduct, error) {
	ids := make([]uuid.UUID, 0, len(user.CartItems))
	for _, item := range user.CartItems {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	result := []*CartProduct{}
	for _, item := range user.CartItems {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		result = append(result, &CartProduct{
			Product:  *product,
			Quantity: item.Quantity,
		})
	}
	return result, nil
}

// AddToCart adds one unit of a product, or bumps the quantity when the
// product is already in the cart
func (s *cartService) AddToCart(ctx context.Context, user *domain.User, productID uuid.UUID) ([]domain.CartItem, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	items := user.CartItems
	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.CartItem{ProductID: productID, Quantity: 1})
	}

	if err := s.userRepo.UpdateCart(ctx, user.ID, items); err != nil {
		return nil, err
	}
	user.CartItems = items
	return items, nil
}

// UpdateQuantity sets the quantity of a cart line, removing it at zero
func (s *cartService) UpdateQuantity(ctx context.Context, user *domain.User, productID uuid.UUID, quantity int) ([]domain.CartItem, error) {
	items := user.CartItems
	idx := -1
	for i := range items {
		if items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrProductNotInCart
	}

	if quantity == 0 {
		items = append(items[:idx], items[idx+1:]...)
	} else {
		items[idx].Quantity = quantity
	}

	if err := s.userRepo.UpdateCart(ctx, user.ID, items); err != nil {
		return nil, err
	}
	user.CartItems = items
	return items, nil
}

// RemoveFromCart removes a product line, or clears the cart when
// productID is nil
func (s *cartService) RemoveFromCart(ctx context.Context, user *domain.User, productID *uuid.UUID) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if productID == nil {
		items = []domain.CartItem{}
	} else {
		items = make([]domain.CartItem, 0, len(user.CartItems))
		for _, item := range user.CartItems {
			if item.ProductID != *productID {
				items = append(items, item)
			}
		}
	}

	if err := s.userRepo.UpdateCart(ctx, user.ID, items); err != nil {
		return nil, err
	}
	user.CartItems = items
	return items, nil
}
