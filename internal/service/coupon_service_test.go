package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
)

func seedCoupon(repo *mockCouponRepository, userID uuid.UUID, code string, expiresAt time.Time) *domain.Coupon {
	c := &domain.Coupon{
		ID:                 uuid.New(),
		Code:               code,
		DiscountPercentage: 10,
		ExpirationDate:     expiresAt,
		IsActive:           true,
		UserID:             userID,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	repo.coupons[c.ID] = c
	return c
}

func TestCouponService_Validate(t *testing.T) {
	repo := newMockCouponRepository()
	svc := NewCouponService(repo)
	userID := uuid.New()

	t.Run("valid coupon", func(t *testing.T) {
		seedCoupon(repo, userID, "GIFT000001", time.Now().Add(time.Hour))

		coupon, err := svc.Validate(context.Background(), "GIFT000001", userID)
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if coupon.DiscountPercentage != 10 {
			t.Errorf("Validate() discount = %d, want 10", coupon.DiscountPercentage)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, err := svc.Validate(context.Background(), "NOPE", userID); err != ErrCouponNotFound {
			t.Errorf("Validate() error = %v, want %v", err, ErrCouponNotFound)
		}
	})

	t.Run("another user's coupon", func(t *testing.T) {
		seedCoupon(repo, uuid.New(), "THEIRS", time.Now().Add(time.Hour))

		if _, err := svc.Validate(context.Background(), "THEIRS", userID); err != ErrCouponNotFound {
			t.Errorf("Validate() error = %v, want %v", err, ErrCouponNotFound)
		}
	})

	t.Run("expired coupon is deactivated", func(t *testing.T) {
		expired := seedCoupon(repo, userID, "EXPIRED", time.Now().Add(-time.Hour))

		if _, err := svc.Validate(context.Background(), "EXPIRED", userID); err != ErrCouponExpired {
			t.Errorf("Validate() error = %v, want %v", err, ErrCouponExpired)
		}
		if repo.coupons[expired.ID].IsActive {
			t.Error("Validate() did not deactivate the expired coupon")
		}
	})
}

func TestCouponService_GrantGiftCoupon(t *testing.T) {
	repo := newMockCouponRepository()
	svc := NewCouponService(repo)
	userID := uuid.New()

	first, err := svc.GrantGiftCoupon(context.Background(), userID)
	if err != nil {
		t.Fatalf("GrantGiftCoupon() error = %v", err)
	}
	if !strings.HasPrefix(first.Code, "GIFT") {
		t.Errorf("GrantGiftCoupon() code = %q, want GIFT prefix", first.Code)
	}
	if first.DiscountPercentage != giftCouponDiscount {
		t.Errorf("GrantGiftCoupon() discount = %d, want %d", first.DiscountPercentage, giftCouponDiscount)
	}
	if first.ExpirationDate.Before(time.Now().Add(29 * 24 * time.Hour)) {
		t.Error("GrantGiftCoupon() expiration is sooner than 30 days")
	}

	t.Run("replaces existing coupon", func(t *testing.T) {
		second, err := svc.GrantGiftCoupon(context.Background(), userID)
		if err != nil {
			t.Fatalf("GrantGiftCoupon() error = %v", err)
		}
		if repo.coupons[first.ID] != nil {
			t.Error("GrantGiftCoupon() left the previous coupon in place")
		}
		active, _ := svc.GetActiveCoupon(context.Background(), userID)
		if active == nil || active.ID != second.ID {
			t.Error("GetActiveCoupon() does not return the replacement coupon")
		}
	})
}
