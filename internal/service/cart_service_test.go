package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
)

func newTestCartService() (CartService, *mockUserRepository, *mockProductRepository) {
	userRepo := newMockUserRepository()
	productRepo := newMockProductRepository()
	return NewCartService(userRepo, productRepo), userRepo, productRepo
}

func seedCartUser(repo *mockUserRepository) *domain.User {
	user := &domain.User{
		ID:        uuid.New(),
		Name:      "Cart User",
		Email:     "cart@example.com",
		Role:      domain.RoleCustomer,
		CartItems: []domain.CartItem{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	repo.add(user)
	return user
}

func TestCartService_AddToCart(t *testing.T) {
	svc, userRepo, productRepo := newTestCartService()
	user := seedCartUser(userRepo)
	product := seedProduct(productRepo, "Sneakers", false)

	t.Run("new product", func(t *testing.T) {
		items, err := svc.AddToCart(context.Background(), user, product.ID)
		if err != nil {
			t.Fatalf("AddToCart() error = %v", err)
		}
		if len(items) != 1 || items[0].Quantity != 1 {
			t.Errorf("AddToCart() items = %+v, want one line with quantity 1", items)
		}
	})

	t.Run("existing product bumps quantity", func(t *testing.T) {
		items, err := svc.AddToCart(context.Background(), user, product.ID)
		if err != nil {
			t.Fatalf("AddToCart() error = %v", err)
		}
		if len(items) != 1 || items[0].Quantity != 2 {
			t.Errorf("AddToCart() items = %+v, want one line with quantity 2", items)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		if _, err := svc.AddToCart(context.Background(), user, uuid.New()); err != ErrProductNotFound {
			t.Errorf("AddToCart() error = %v, want %v", err, ErrProductNotFound)
		}
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc, userRepo, productRepo := newTestCartService()
	user := seedCartUser(userRepo)
	product := seedProduct(productRepo, "Sneakers", false)

	if _, err := svc.AddToCart(context.Background(), user, product.ID); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	t.Run("set quantity", func(t *testing.T) {
		items, err := svc.UpdateQuantity(context.Background(), user, product.ID, 5)
		if err != nil {
			t.Fatalf("UpdateQuantity() error = %v", err)
		}
		if items[0].Quantity != 5 {
			t.Errorf("UpdateQuantity() quantity = %d, want 5", items[0].Quantity)
		}
	})

	t.Run("zero removes the line", func(t *testing.T) {
		items, err := svc.UpdateQuantity(context.Background(), user, product.ID, 0)
		if err != nil {
			t.Fatalf("UpdateQuantity() error = %v", err)
		}
		if len(items) != 0 {
			t.Errorf("UpdateQuantity() items = %+v, want empty", items)
		}
	})

	t.Run("absent product", func(t *testing.T) {
		if _, err := svc.UpdateQuantity(context.Background(), user, uuid.New(), 3); err != ErrProductNotInCart {
			t.Errorf("UpdateQuantity() error = %v, want %v", err, ErrProductNotInCart)
		}
	})
}

func TestCartService_RemoveFromCart(t *testing.T) {
	svc, userRepo, productRepo := newTestCartService()
	user := seedCartUser(userRepo)
	first := seedProduct(productRepo, "First", false)
	second := seedProduct(productRepo, "Second", false)

	if _, err := svc.AddToCart(context.Background(), user, first.ID); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	if _, err := svc.AddToCart(context.Background(), user, second.ID); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	t.Run("remove one line", func(t *testing.T) {
		items, err := svc.RemoveFromCart(context.Background(), user, &first.ID)
		if err != nil {
			t.Fatalf("RemoveFromCart() error = %v", err)
		}
		if len(items) != 1 || items[0].ProductID != second.ID {
			t.Errorf("RemoveFromCart() items = %+v, want only second product", items)
		}
	})

	t.Run("nil clears the cart", func(t *testing.T) {
		items, err := svc.RemoveFromCart(context.Background(), user, nil)
		if err != nil {
			t.Fatalf("RemoveFromCart() error = %v", err)
		}
		if len(items) != 0 {
			t.Errorf("RemoveFromCart() items = %+v, want empty", items)
		}
	})
}

func TestCartService_GetCartProducts(t *testing.T) {
	svc, userRepo, productRepo := newTestCartService()
	user := seedCartUser(userRepo)
	product := seedProduct(productRepo, "Sneakers", false)

	user.CartItems = []domain.CartItem{
		{ProductID: product.ID, Quantity: 2},
		{ProductID: uuid.New(), Quantity: 1}, // product no longer exists
	}

	result, err := svc.GetCartProducts(context.Background(), user)
	if err != nil {
		t.Fatalf("GetCartProducts() error = %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("GetCartProducts() returned %d lines, want 1", len(result))
	}
	if result[0].ID != product.ID || result[0].Quantity != 2 {
		t.Errorf("GetCartProducts() = %+v, want sneakers with quantity 2", result[0])
	}
}
