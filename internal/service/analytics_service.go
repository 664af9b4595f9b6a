package service

import (
	"context"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/repository"
)

// AnalyticsService defines the interface for analytics operations
type AnalyticsService interface {
	// GetSummary returns aggregated storefront totals
	GetSummary(ctx context.Context) (*domain.AnalyticsSummary, error)
}

// analyticsService implements AnalyticsService
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

// GetSummary returns aggregated storefront totals
func (s *analyticsService) GetSummary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	return s.analyticsRepo.Summary(ctx)
}
