package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/dto"
	"github.com/RuslanKralin/e-commerce-store/internal/repository"
	"github.com/RuslanKralin/e-commerce-store/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
)

// AuthServiceConfig holds configuration for AuthService
type AuthServiceConfig struct {
	BcryptCost int
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register registers a new user and opens a session
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	// Login authenticates a user and opens a session
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// Refresh rotates the token pair using a refresh token
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Logout invalidates the session carried by the refresh token
	Logout(ctx context.Context, refreshToken string) error
	// ValidateAccess verifies an access token and loads its user
	ValidateAccess(ctx context.Context, accessToken string) (*domain.User, error)
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	sessions repository.SessionStore
	tokens   TokenService
	config   *AuthServiceConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	sessions repository.SessionStore,
	tokens TokenService,
	config *AuthServiceConfig,
) AuthService {
	if config == nil {
		config = &AuthServiceConfig{}
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		tokens:   tokens,
		config:   config,
	}
}

// Register registers a new user and opens a session
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(req.Email)

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      domain.RoleCustomer,
		CartItems: []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	pair, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         dto.NewUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
	}, nil
}

// Login authenticates a user and opens a session
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         dto.NewUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
	}, nil
}

// Refresh rotates the token pair using a refresh token. The signature is
// checked first, then the token must exactly match the one stored for
// the user, which rejects stale tokens after rotation.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stored, err := s.sessions.Get(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != refreshToken {
		return nil, ErrSessionNotFound
	}

	pair, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
	}, nil
}

// Logout invalidates the session carried by the refresh token. Logout is
// best effort: an invalid token or a session that is already gone is not
// an error.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil
	}

	if err := s.sessions.Delete(ctx, claims.UserID); err != nil {
		logger.Get().Warn("failed to delete session on logout",
			zap.String("user_id", claims.UserID.String()),
			zap.Error(err),
		)
	}
	return nil
}

// ValidateAccess verifies an access token and loads its user. The
// session store is never consulted: access tokens stand on their
// signature and expiry alone.
func (s *authService) ValidateAccess(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := s.tokens.VerifyAccess(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// openSession issues a fresh token pair and stores the refresh token,
// replacing any existing session for the user
func (s *authService) openSession(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Put(ctx, user.ID, pair.RefreshToken, s.tokens.RefreshTTL()); err != nil {
		return nil, err
	}
	return pair, nil
}
