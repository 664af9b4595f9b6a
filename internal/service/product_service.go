package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/dto"
	"github.com/RuslanKralin/e-commerce-store/internal/repository"
	"github.com/RuslanKralin/e-commerce-store/internal/storage"
	"github.com/RuslanKralin/e-commerce-store/pkg/logger"

	"go.uber.org/zap"
)

var ErrProductNotFound = errors.New("product not found")

// recommendationSampleSize is how many products the recommendations
// endpoint returns
const recommendationSampleSize = 4

// ProductService defines the interface for catalog operations
type ProductService interface {
	// Create creates a product, uploading its image when one is given
	Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error)
	// GetAll retrieves every product
	GetAll(ctx context.Context) ([]*domain.Product, error)
	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// GetFeatured retrieves featured products, served from cache when warm
	GetFeatured(ctx context.Context) ([]*domain.Product, error)
	// GetByCategory retrieves products in a category
	GetByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	// GetRecommendations retrieves a random product sample
	GetRecommendations(ctx context.Context) ([]*domain.Product, error)
	// ToggleFeatured flips the featured flag and refreshes the cache
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// Update applies a partial update to a product
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*domain.Product, error)
	// Delete removes a product and its stored image
	Delete(ctx context.Context, id uuid.UUID) error
}

// productService implements ProductService
type productService struct {
	productRepo repository.ProductRepository
	cache       repository.ProductCache
	images      storage.ImageStore
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo repository.ProductRepository,
	cache repository.ProductCache,
	images storage.ImageStore,
) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       cache,
		images:      images,
	}
}

// Create creates a product, uploading its image when one is given
func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error) {
	imageURL := ""
	if req.Image != "" {
		url, err := s.images.Upload(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	now := time.Now()
	product := &domain.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       imageURL,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetAll retrieves every product
func (s *productService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.GetAll(ctx)
}

// GetByID retrieves a product by ID
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetFeatured retrieves featured products, served from cache when warm.
// A cache failure falls through to the database.
func (s *productService) GetFeatured(ctx context.Context) ([]*domain.Product, error) {
	cached, err := s.cache.GetFeatured(ctx)
	if err != nil {
		logger.Get().Warn("featured products cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	products, err := s.productRepo.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetFeatured(ctx, products); err != nil {
		logger.Get().Warn("featured products cache write failed", zap.Error(err))
	}
	return products, nil
}

// GetByCategory retrieves products in a category
func (s *productService) GetByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.productRepo.GetByCategory(ctx, category)
}

// GetRecommendations retrieves a random product sample
func (s *productService) GetRecommendations(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.GetRandomSample(ctx, recommendationSampleSize)
}

// ToggleFeatured flips the featured flag and refreshes the cache
func (s *productService) ToggleFeatured(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	updated, err := s.productRepo.SetFeatured(ctx, id, !product.IsFeatured)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}

	s.refreshFeaturedCache(ctx)
	return updated, nil
}

// Update applies a partial update to a product
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if product.IsFeatured {
		s.refreshFeaturedCache(ctx)
	}
	return product, nil
}

// Delete removes a product and its stored image. Image deletion is best
// effort.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if product.Image != "" {
		if err := s.images.Delete(ctx, product.Image); err != nil {
			logger.Get().Warn("failed to delete product image",
				zap.String("product_id", id.String()),
				zap.Error(err),
			)
		}
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if product.IsFeatured {
		s.refreshFeaturedCache(ctx)
	}
	return nil
}

// refreshFeaturedCache rewrites the cached featured listing from the
// database. Failures only log: the next read repopulates the cache.
func (s *productService) refreshFeaturedCache(ctx context.Context) {
	products, err := s.productRepo.GetFeatured(ctx)
	if err != nil {
		logger.Get().Warn("failed to reload featured products", zap.Error(err))
		return
	}
	if err := s.cache.SetFeatured(ctx, products); err != nil {
		logger.Get().Warn("failed to refresh featured products cache", zap.Error(err))
	}
}
