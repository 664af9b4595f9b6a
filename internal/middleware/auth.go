package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/service"
	"github.com/RuslanKralin/e-commerce-store/pkg/response"
)

const (
	// AccessTokenCookie is the cookie carrying the access token
	AccessTokenCookie = "accessToken"
	// RefreshTokenCookie is the cookie carrying the refresh token
	RefreshTokenCookie = "refreshToken"
	// userKey is the context key for the authenticated user
	userKey = "current_user"
)

// RequireAuth guards routes with the access token. The token comes from
// the accessToken cookie, with an Authorization bearer fallback for
// non-browser clients. Only the token signature and expiry are checked,
// the session store is not consulted.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractAccessToken(c)
		if token == "" {
			response.Unauthorized(c, "Access token not provided")
			c.Abort()
			return
		}

		user, err := auth.ValidateAccess(c.Request.Context(), token)
		if err != nil {
			switch err {
			case service.ErrTokenExpired:
				response.Unauthorized(c, "Access token expired")
			case service.ErrUserNotFound:
				response.Unauthorized(c, "User no longer exists")
			default:
				response.Unauthorized(c, "Invalid access token")
			}
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin guards routes for admin users. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			response.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil
func CurrentUser(c *gin.Context) *domain.User {
	if v, exists := c.Get(userKey); exists {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}

func extractAccessToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
