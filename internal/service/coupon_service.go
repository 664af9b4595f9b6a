package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/repository"
)

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExpired  = errors.New("coupon expired")
)

const (
	// giftCouponDiscount is the percentage granted on large orders
	giftCouponDiscount = 10
	// giftCouponLifetime is how long a gift coupon stays valid
	giftCouponLifetime = 30 * 24 * time.Hour
)

// CouponService defines the interface for coupon operations
type CouponService interface {
	// GetActiveCoupon returns the user's active coupon, or nil
	GetActiveCoupon(ctx context.Context, userID uuid.UUID) (*domain.Coupon, error)
	// Validate checks a coupon code for a user. Expired coupons are
	// deactivated on sight.
	Validate(ctx context.Context, code string, userID uuid.UUID) (*domain.Coupon, error)
	// GrantGiftCoupon issues a fresh gift coupon, replacing any existing
	// coupon for the user
	GrantGiftCoupon(ctx context.Context, userID uuid.UUID) (*domain.Coupon, error)
	// Deactivate marks a coupon inactive after it is redeemed
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// couponService implements CouponService
type couponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService creates a new CouponService
func NewCouponService(couponRepo repository.CouponRepository) CouponService {
	return &couponService{couponRepo: couponRepo}
}

// GetActiveCoupon returns the user's active coupon, or nil
func (s *couponService) GetActiveCoupon(ctx context.Context, userID uuid.UUID) (*domain.Coupon, error) {
	return s.couponRepo.GetActiveByUserID(ctx, userID)
}

// Validate checks a coupon code for a user. Expired coupons are
// deactivated on sight.
func (s *couponService) Validate(ctx context.Context, code string, userID uuid.UUID) (*domain.Coupon, error) {
	coupon, err := s.couponRepo.GetByCodeAndUserID(ctx, code, userID)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	if coupon.IsExpired(time.Now()) {
		if err := s.couponRepo.Deactivate(ctx, coupon.ID); err != nil {
			return nil, err
		}
		return nil, ErrCouponExpired
	}
	return coupon, nil
}

// GrantGiftCoupon issues a fresh gift coupon, replacing any existing
// coupon for the user
func (s *couponService) GrantGiftCoupon(ctx context.Context, userID uuid.UUID) (*domain.Coupon, error) {
	now := time.Now()
	coupon := &domain.Coupon{
		ID:                 uuid.New(),
		Code:               generateGiftCode(),
		DiscountPercentage: giftCouponDiscount,
		ExpirationDate:     now.Add(giftCouponLifetime),
		IsActive:           true,
		UserID:             userID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.couponRepo.Replace(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Deactivate marks a coupon inactive after it is redeemed
func (s *couponService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.couponRepo.Deactivate(ctx, id)
}

func generateGiftCode() string {
	return fmt.Sprintf("GIFT%06d", rand.Intn(1000000))
}
