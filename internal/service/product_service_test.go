package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/dto"
	"github.com/RuslanKralin/e-commerce-store/internal/storage"
)

func newTestProductService() (ProductService, *mockProductRepository, *mockProductCache, *storage.MockImageStore) {
	productRepo := newMockProductRepository()
	cache := newMockProductCache()
	images := storage.NewMockImageStore()
	svc := NewProductService(productRepo, cache, images)
	return svc, productRepo, cache, images
}

func seedProduct(repo *mockProductRepository, name string, featured bool) *domain.Product {
	p := &domain.Product{
		ID:         uuid.New(),
		Name:       name,
		Price:      9.99,
		Category:   "shoes",
		IsFeatured: featured,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	repo.products[p.ID] = p
	return p
}

func TestProductService_Create(t *testing.T) {
	svc, repo, _, images := newTestProductService()

	t.Run("with image", func(t *testing.T) {
		product, err := svc.Create(context.Background(), &dto.CreateProductRequest{
			Name:     "Sneakers",
			Price:    59.99,
			Category: "shoes",
			Image:    "data:image/png;base64,aGVsbG8=",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if product.Image == "" {
			t.Error("Create() did not set the uploaded image URL")
		}
		if !images.Has(product.Image) {
			t.Error("Create() image was not stored")
		}
		if repo.products[product.ID] == nil {
			t.Error("Create() product was not persisted")
		}
	})

	t.Run("without image", func(t *testing.T) {
		product, err := svc.Create(context.Background(), &dto.CreateProductRequest{
			Name:     "Socks",
			Price:    4.99,
			Category: "accessories",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if product.Image != "" {
			t.Errorf("Create() Image = %q, want empty", product.Image)
		}
	})

	t.Run("upload failure aborts creation", func(t *testing.T) {
		images.FailUpload = true
		defer func() { images.FailUpload = false }()

		_, err := svc.Create(context.Background(), &dto.CreateProductRequest{
			Name:     "Boots",
			Price:    89.99,
			Category: "shoes",
			Image:    "data:image/png;base64,aGVsbG8=",
		})
		if err == nil {
			t.Error("Create() expected error on upload failure")
		}
	})
}

func TestProductService_GetFeatured(t *testing.T) {
	svc, repo, cache, _ := newTestProductService()
	seedProduct(repo, "Featured One", true)
	seedProduct(repo, "Plain One", false)

	t.Run("miss populates cache", func(t *testing.T) {
		products, err := svc.GetFeatured(context.Background())
		if err != nil {
			t.Fatalf("GetFeatured() error = %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("GetFeatured() returned %d products, want 1", len(products))
		}
		if cache.misses != 1 {
			t.Errorf("cache misses = %d, want 1", cache.misses)
		}
		if cache.featured == nil {
			t.Error("GetFeatured() did not populate the cache")
		}
	})

	t.Run("second read hits cache", func(t *testing.T) {
		if _, err := svc.GetFeatured(context.Background()); err != nil {
			t.Fatalf("GetFeatured() error = %v", err)
		}
		if cache.hits != 1 {
			t.Errorf("cache hits = %d, want 1", cache.hits)
		}
	})
}

func TestProductService_ToggleFeatured(t *testing.T) {
	svc, repo, cache, _ := newTestProductService()
	product := seedProduct(repo, "Toggle Me", false)

	updated, err := svc.ToggleFeatured(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("ToggleFeatured() error = %v", err)
	}
	if !updated.IsFeatured {
		t.Error("ToggleFeatured() did not set the flag")
	}
	if len(cache.featured) != 1 {
		t.Errorf("cache holds %d featured products, want 1", len(cache.featured))
	}

	t.Run("unknown product", func(t *testing.T) {
		if _, err := svc.ToggleFeatured(context.Background(), uuid.New()); err != ErrProductNotFound {
			t.Errorf("ToggleFeatured() error = %v, want %v", err, ErrProductNotFound)
		}
	})
}

func TestProductService_Delete(t *testing.T) {
	svc, repo, cache, images := newTestProductService()

	imageURL, _ := images.Upload(context.Background(), "data:image/png;base64,aGVsbG8=")
	product := seedProduct(repo, "Doomed", true)
	product.Image = imageURL

	// Warm the cache so deletion has something to refresh
	if _, err := svc.GetFeatured(context.Background()); err != nil {
		t.Fatalf("GetFeatured() error = %v", err)
	}

	if err := svc.Delete(context.Background(), product.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if repo.products[product.ID] != nil {
		t.Error("Delete() did not remove the product")
	}
	if images.Has(imageURL) {
		t.Error("Delete() did not remove the stored image")
	}
	if len(cache.featured) != 0 {
		t.Errorf("cache still holds %d featured products, want 0", len(cache.featured))
	}

	t.Run("unknown product", func(t *testing.T) {
		if err := svc.Delete(context.Background(), uuid.New()); err != ErrProductNotFound {
			t.Errorf("Delete() error = %v, want %v", err, ErrProductNotFound)
		}
	})
}

func TestProductService_Update(t *testing.T) {
	svc, repo, _, _ := newTestProductService()
	product := seedProduct(repo, "Old Name", false)

	newName := "New Name"
	newPrice := 19.99
	updated, err := svc.Update(context.Background(), product.ID, &dto.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != newName {
		t.Errorf("Update() Name = %q, want %q", updated.Name, newName)
	}
	if updated.Price != newPrice {
		t.Errorf("Update() Price = %v, want %v", updated.Price, newPrice)
	}
	if updated.Category != "shoes" {
		t.Errorf("Update() Category = %q, want unchanged", updated.Category)
	}
}

func TestProductService_GetRecommendations(t *testing.T) {
	svc, repo, _, _ := newTestProductService()
	for i := 0; i < 6; i++ {
		seedProduct(repo, "Product", false)
	}

	products, err := svc.GetRecommendations(context.Background())
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}
	if len(products) != recommendationSampleSize {
		t.Errorf("GetRecommendations() returned %d products, want %d", len(products), recommendationSampleSize)
	}
}
