package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/dto"
	"github.com/RuslanKralin/e-commerce-store/internal/middleware"
	"github.com/RuslanKralin/e-commerce-store/internal/service"
)

// mockAuthService is a mock implementation of service.AuthService
type mockAuthService struct {
	user        *domain.User
	registerErr error
	loginErr    error
	refreshErr  error
	validateErr error
}

func newMockAuthService() *mockAuthService {
	return &mockAuthService{
		user: &domain.User{
			ID:        uuid.New(),
			Name:      "Test User",
			Email:     "test@example.com",
			Role:      domain.RoleCustomer,
			CartItems: []domain.CartItem{},
			CreatedAt: time.Now(),
		},
	}
}

func (m *mockAuthService) authResponse() *dto.AuthResponse {
	return &dto.AuthResponse{
		User:         dto.NewUserResponse(m.user),
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}
}

func (m *mockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.authResponse(), nil
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.authResponse(), nil
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if m.refreshErr != nil {
		return nil, m.refreshErr
	}
	return &dto.TokenResponse{
		AccessToken:  "rotated-access",
		RefreshToken: "rotated-refresh",
		ExpiresIn:    900,
	}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

func (m *mockAuthService) ValidateAccess(ctx context.Context, accessToken string) (*domain.User, error) {
	if m.validateErr != nil {
		return nil, m.validateErr
	}
	return m.user, nil
}

func (m *mockAuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.user, nil
}

func newAuthTestRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc, CookieConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})

	r := gin.New()
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/refresh", h.Refresh)
		auth.GET("/profile", middleware.RequireAuth(svc), h.GetProfile)
	}
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success sets cookies", func(t *testing.T) {
		r := newAuthTestRouter(newMockAuthService())

		w := postJSON(r, "/api/v1/auth/register", dto.RegisterRequest{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "secret1",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
		}

		cookies := w.Result().Cookies()
		var hasAccess, hasRefresh bool
		for _, c := range cookies {
			if c.Name == middleware.AccessTokenCookie && c.HttpOnly {
				hasAccess = true
			}
			if c.Name == middleware.RefreshTokenCookie && c.HttpOnly {
				hasRefresh = true
			}
		}
		if !hasAccess || !hasRefresh {
			t.Error("expected HttpOnly accessToken and refreshToken cookies")
		}
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		svc := newMockAuthService()
		svc.registerErr = service.ErrUserAlreadyExists
		r := newAuthTestRouter(svc)

		w := postJSON(r, "/api/v1/auth/register", dto.RegisterRequest{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "secret1",
		})

		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
		}
	})

	t.Run("short password rejected", func(t *testing.T) {
		r := newAuthTestRouter(newMockAuthService())

		w := postJSON(r, "/api/v1/auth/register", dto.RegisterRequest{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "abc",
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("unknown user returns not found", func(t *testing.T) {
		svc := newMockAuthService()
		svc.loginErr = service.ErrUserNotFound
		r := newAuthTestRouter(svc)

		w := postJSON(r, "/api/v1/auth/login", dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret1",
		})

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("wrong password returns unauthorized", func(t *testing.T) {
		svc := newMockAuthService()
		svc.loginErr = service.ErrInvalidCredentials
		r := newAuthTestRouter(svc)

		w := postJSON(r, "/api/v1/auth/login", dto.LoginRequest{
			Email:    "test@example.com",
			Password: "wrong",
		})

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("success returns tokens in body", func(t *testing.T) {
		r := newAuthTestRouter(newMockAuthService())

		w := postJSON(r, "/api/v1/auth/login", dto.LoginRequest{
			Email:    "test@example.com",
			Password: "secret1",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), "accessToken") {
			t.Error("response body does not carry the access token")
		}
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("reads token from cookie", func(t *testing.T) {
		r := newAuthTestRouter(newMockAuthService())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: middleware.RefreshTokenCookie, Value: "refresh-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("missing token returns unauthorized", func(t *testing.T) {
		r := newAuthTestRouter(newMockAuthService())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("stale session returns unauthorized", func(t *testing.T) {
		svc := newMockAuthService()
		svc.refreshErr = service.ErrSessionNotFound
		r := newAuthTestRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: middleware.RefreshTokenCookie, Value: "stale"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	r := newAuthTestRouter(newMockAuthService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.RefreshTokenCookie, Value: "refresh-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	for _, c := range w.Result().Cookies() {
		if (c.Name == middleware.AccessTokenCookie || c.Name == middleware.RefreshTokenCookie) && c.MaxAge >= 0 {
			t.Errorf("cookie %s was not cleared", c.Name)
		}
	}
}

func TestAuthHandler_GetProfile(t *testing.T) {
	t.Run("with bearer token", func(t *testing.T) {
		svc := newMockAuthService()
		r := newAuthTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer access-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), svc.user.Email) {
			t.Error("profile response does not contain the user email")
		}
	})

	t.Run("without token", func(t *testing.T) {
		r := newAuthTestRouter(newMockAuthService())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		svc := newMockAuthService()
		svc.validateErr = service.ErrTokenExpired
		r := newAuthTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "expired"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}
