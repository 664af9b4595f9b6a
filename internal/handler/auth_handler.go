package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RuslanKralin/e-commerce-store/internal/dto"
	"github.com/RuslanKralin/e-commerce-store/internal/middleware"
	"github.com/RuslanKralin/e-commerce-store/internal/service"
	"github.com/RuslanKralin/e-commerce-store/pkg/response"
)

// CookieConfig controls how auth cookies are written
type CookieConfig struct {
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Secure          bool
}

// AuthHandler handles authentication HTTP endpoints
type AuthHandler struct {
	authService service.AuthService
	cookies     CookieConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.ValidatePassword(); !ok {
		response.BadRequest(c, msg)
		return
	}
	if ok, msg := req.ValidateEmail(); !ok {
		response.BadRequest(c, msg)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			response.Conflict(c, "User with this email already exists")
			return
		}
		response.InternalError(c, err)
		return
	}

	h.setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	response.Created(c, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "Invalid email or password")
		default:
			response.InternalError(c, err)
		}
		return
	}

	h.setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	response.Success(c, resp)
}

// Logout handles POST /auth/logout. Best effort: always clears cookies
// and returns success.
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken := h.refreshTokenFromRequest(c)

	if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
		response.InternalError(c, err)
		return
	}

	h.clearAuthCookies(c)
	response.Success(c, gin.H{"message": "Logged out successfully"})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := h.refreshTokenFromRequest(c)
	if refreshToken == "" {
		response.Unauthorized(c, "Refresh token not provided")
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenExpired):
			response.Unauthorized(c, "Refresh token expired")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, service.ErrInvalidToken),
			errors.Is(err, service.ErrSessionNotFound):
			response.Unauthorized(c, "Invalid refresh token")
		default:
			response.InternalError(c, err)
		}
		return
	}

	h.setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	response.Success(c, resp)
}

// GetProfile handles GET /auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}
	response.Success(c, dto.NewUserResponse(user))
}

// refreshTokenFromRequest reads the refresh token from the cookie, with
// a JSON body fallback for non-browser clients
func (h *AuthHandler) refreshTokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(middleware.RefreshTokenCookie); err == nil && token != "" {
		return token
	}

	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, int(h.cookies.AccessTokenTTL.Seconds()), "/", "", h.cookies.Secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, refreshToken, int(h.cookies.RefreshTokenTTL.Seconds()), "/", "", h.cookies.Secure, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.cookies.Secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", h.cookies.Secure, true)
}
