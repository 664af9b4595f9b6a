package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/middleware"
	"github.com/RuslanKralin/e-commerce-store/internal/service"
)

// mockAnalyticsService is a mock implementation of service.AnalyticsService
type mockAnalyticsService struct {
	summary *domain.AnalyticsSummary
}

func (m *mockAnalyticsService) GetSummary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	return m.summary, nil
}

func newAnalyticsTestRouter(analytics service.AnalyticsService, auth service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAnalyticsHandler(analytics)

	r := gin.New()
	r.GET("/api/v1/analytics", middleware.RequireAuth(auth), middleware.RequireAdmin(), h.GetSummary)
	return r
}

func TestAnalyticsHandler_GetSummary(t *testing.T) {
	analytics := &mockAnalyticsService{summary: &domain.AnalyticsSummary{
		Users:        3,
		Products:     12,
		TotalSales:   7,
		TotalRevenue: 950.50,
	}}

	t.Run("admin gets the summary", func(t *testing.T) {
		auth := newMockAuthService()
		auth.user.Role = domain.RoleAdmin
		r := newAnalyticsTestRouter(analytics, auth)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics", nil)
		req.Header.Set("Authorization", "Bearer access-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), "totalRevenue") {
			t.Error("response body does not carry the revenue total")
		}
	})

	t.Run("customer gets forbidden", func(t *testing.T) {
		r := newAnalyticsTestRouter(analytics, newMockAuthService())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics", nil)
		req.Header.Set("Authorization", "Bearer access-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
		}
	})
}
