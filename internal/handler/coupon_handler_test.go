package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/dto"
	"github.com/RuslanKralin/e-commerce-store/internal/middleware"
	"github.com/RuslanKralin/e-commerce-store/internal/service"
)

// mockCouponService is a mock implementation of service.CouponService
type mockCouponService struct {
	coupon      *domain.Coupon
	validateErr error
}

func (m *mockCouponService) GetActiveCoupon(ctx context.Context, userID uuid.UUID) (*domain.Coupon, error) {
	return m.coupon, nil
}

func (m *mockCouponService) Validate(ctx context.Context, code string, userID uuid.UUID) (*domain.Coupon, error) {
	if m.validateErr != nil {
		return nil, m.validateErr
	}
	return m.coupon, nil
}

func (m *mockCouponService) GrantGiftCoupon(ctx context.Context, userID uuid.UUID) (*domain.Coupon, error) {
	return m.coupon, nil
}

func (m *mockCouponService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return nil
}

func postJSONAuthed(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer access-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newCouponTestRouter(coupons service.CouponService, auth service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCouponHandler(coupons)

	r := gin.New()
	grp := r.Group("/api/v1/coupons", middleware.RequireAuth(auth))
	{
		grp.GET("", h.GetCoupon)
		grp.POST("/validate", h.ValidateCoupon)
	}
	return r
}

func TestCouponHandler_ValidateCoupon(t *testing.T) {
	validate := func(svc *mockCouponService) int {
		r := newCouponTestRouter(svc, newMockAuthService())
		w := postJSONAuthed(r, "/api/v1/coupons/validate", dto.ValidateCouponRequest{Code: "GIFT000001"})
		return w.Code
	}

	t.Run("valid coupon", func(t *testing.T) {
		svc := &mockCouponService{coupon: &domain.Coupon{
			ID:                 uuid.New(),
			Code:               "GIFT000001",
			DiscountPercentage: 10,
			IsActive:           true,
		}}
		if code := validate(svc); code != http.StatusOK {
			t.Errorf("status = %d, want %d", code, http.StatusOK)
		}
	})

	t.Run("unknown coupon returns not found", func(t *testing.T) {
		svc := &mockCouponService{validateErr: service.ErrCouponNotFound}
		if code := validate(svc); code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", code, http.StatusNotFound)
		}
	})

	t.Run("expired coupon returns bad request", func(t *testing.T) {
		svc := &mockCouponService{validateErr: service.ErrCouponExpired}
		if code := validate(svc); code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", code, http.StatusBadRequest)
		}
	})
}
