package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenServiceConfig holds configuration for TokenService
type TokenServiceConfig struct {
	AccessSecret    string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

// TokenService issues and verifies the access/refresh token pair.
// Access and refresh tokens are signed with distinct secrets so one can
// never be presented in place of the other.
type TokenService interface {
	// IssuePair issues a fresh access and refresh token for a user
	IssuePair(user *domain.User) (*domain.TokenPair, error)
	// VerifyAccess verifies an access token and returns its claims
	VerifyAccess(token string) (*domain.Claims, error)
	// VerifyRefresh verifies a refresh token and returns its claims
	VerifyRefresh(token string) (*domain.Claims, error)
	// AccessTTL returns the access token lifetime
	AccessTTL() time.Duration
	// RefreshTTL returns the refresh token lifetime
	RefreshTTL() time.Duration
}

// tokenService implements TokenService using HS256 JWTs
type tokenService struct {
	config *TokenServiceConfig
}

// NewTokenService creates a new TokenService
func NewTokenService(config *TokenServiceConfig) TokenService {
	if config.AccessTokenTTL == 0 {
		config.AccessTokenTTL = 15 * time.Minute
	}
	if config.RefreshTokenTTL == 0 {
		config.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	return &tokenService{config: config}
}

// IssuePair issues a fresh access and refresh token for a user
func (s *tokenService) IssuePair(user *domain.User) (*domain.TokenPair, error) {
	now := time.Now()

	accessToken, err := s.sign(user, domain.TokenTypeAccess, now, s.config.AccessTokenTTL, s.config.AccessSecret)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.sign(user, domain.TokenTypeRefresh, now, s.config.RefreshTokenTTL, s.config.RefreshSecret)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccess verifies an access token and returns its claims
func (s *tokenService) VerifyAccess(token string) (*domain.Claims, error) {
	return s.verify(token, domain.TokenTypeAccess, s.config.AccessSecret)
}

// VerifyRefresh verifies a refresh token and returns its claims
func (s *tokenService) VerifyRefresh(token string) (*domain.Claims, error) {
	return s.verify(token, domain.TokenTypeRefresh, s.config.RefreshSecret)
}

// AccessTTL returns the access token lifetime
func (s *tokenService) AccessTTL() time.Duration {
	return s.config.AccessTokenTTL
}

// RefreshTTL returns the refresh token lifetime
func (s *tokenService) RefreshTTL() time.Duration {
	return s.config.RefreshTokenTTL
}

func (s *tokenService) sign(user *domain.User, tokenType domain.TokenType, now time.Time, ttl time.Duration, secret string) (string, error) {
	claims := &domain.Claims{
		UserID: user.ID,
		Role:   user.Role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *tokenService) verify(tokenString string, wantType domain.TokenType, secret string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.Type != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
