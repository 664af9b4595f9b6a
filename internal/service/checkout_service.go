package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
	"github.com/RuslanKralin/e-commerce-store/internal/dto"
	"github.com/RuslanKralin/e-commerce-store/internal/gateway"
	"github.com/RuslanKralin/e-commerce-store/internal/repository"
	"github.com/RuslanKralin/e-commerce-store/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrSessionMismatch     = errors.New("session does not belong to user")
)

// giftCouponThreshold is the order total, in dollars, above which a gift
// coupon is granted
const giftCouponThreshold = 200

// CheckoutServiceConfig holds configuration for CheckoutService
type CheckoutServiceConfig struct {
	SuccessURL string
	CancelURL  string
}

// CheckoutService defines the interface for checkout operations
type CheckoutService interface {
	// CreateSession opens a hosted checkout session for the given cart
	CreateSession(ctx context.Context, user *domain.User, req *dto.CreateCheckoutSessionRequest) (*dto.CheckoutSessionResponse, error)
	// ConfirmSuccess records an order for a paid session. Confirming the
	// same session twice returns the existing order.
	ConfirmSuccess(ctx context.Context, user *domain.User, sessionID string) (*domain.Order, error)
}

// checkoutService implements CheckoutService
type checkoutService struct {
	gateway   gateway.CheckoutGateway
	orderRepo repository.OrderRepository
	coupons   CouponService
	userRepo  repository.UserRepository
	config    *CheckoutServiceConfig
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	gw gateway.CheckoutGateway,
	orderRepo repository.OrderRepository,
	coupons CouponService,
	userRepo repository.UserRepository,
	config *CheckoutServiceConfig,
) CheckoutService {
	return &checkoutService{
		gateway:   gw,
		orderRepo: orderRepo,
		coupons:   coupons,
		userRepo:  userRepo,
		config:    config,
	}
}

// CreateSession opens a hosted checkout session for the given cart
func (s *checkoutService) CreateSession(ctx context.Context, user *domain.User, req *dto.CreateCheckoutSessionRequest) (*dto.CheckoutSessionResponse, error) {
	lineItems := make([]gateway.LineItem, 0, len(req.Products))
	snapshot := make([]domain.OrderProduct, 0, len(req.Products))
	var total float64
	for _, p := range req.Products {
		productID, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q: %w", p.ID, err)
		}
		lineItems = append(lineItems, gateway.LineItem{
			Name:      p.Name,
			Image:     p.Image,
			UnitPrice: p.Price,
			Quantity:  p.Quantity,
		})
		snapshot = append(snapshot, domain.OrderProduct{
			ProductID: productID,
			Quantity:  p.Quantity,
			Price:     p.Price,
		})
		total += p.Price * float64(p.Quantity)
	}

	discount := 0
	couponCode := ""
	if req.CouponCode != "" {
		coupon, err := s.coupons.Validate(ctx, req.CouponCode, user.ID)
		if err != nil {
			return nil, err
		}
		discount = coupon.DiscountPercentage
		couponCode = coupon.Code
		total -= total * float64(discount) / 100
	}

	// The priced lines are snapshotted into the session metadata so the
	// order is recorded from what was actually charged, not from the
	// cart as it stands at confirmation time
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode product snapshot: %w", err)
	}

	result, err := s.gateway.CreateCheckoutSession(ctx, &gateway.CheckoutSessionRequest{
		LineItems:          lineItems,
		DiscountPercentage: discount,
		SuccessURL:         s.config.SuccessURL,
		CancelURL:          s.config.CancelURL,
		Metadata: map[string]string{
			"userId":     user.ID.String(),
			"couponCode": couponCode,
			"products":   string(snapshotJSON),
		},
	})
	if err != nil {
		return nil, err
	}

	// Large orders earn a gift coupon for the next purchase
	if total >= giftCouponThreshold {
		if _, err := s.coupons.GrantGiftCoupon(ctx, user.ID); err != nil {
			logger.Get().Warn("failed to grant gift coupon",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
		}
	}

	return &dto.CheckoutSessionResponse{
		ID:          result.ID,
		URL:         result.URL,
		TotalAmount: total,
	}, nil
}

// ConfirmSuccess records an order for a paid session. Confirming the
// same session twice returns the existing order.
func (s *checkoutService) ConfirmSuccess(ctx context.Context, user *domain.User, sessionID string) (*domain.Order, error) {
	if existing, err := s.orderRepo.GetBySessionID(ctx, sessionID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	info, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !info.Paid {
		return nil, ErrPaymentNotCompleted
	}
	if owner := info.Metadata["userId"]; owner != "" && owner != user.ID.String() {
		return nil, ErrSessionMismatch
	}

	if code := info.Metadata["couponCode"]; code != "" {
		if coupon, err := s.coupons.Validate(ctx, code, user.ID); err == nil {
			if err := s.coupons.Deactivate(ctx, coupon.ID); err != nil {
				logger.Get().Warn("failed to deactivate redeemed coupon",
					zap.String("coupon_id", coupon.ID.String()),
					zap.Error(err),
				)
			}
		}
	}

	var products []domain.OrderProduct
	if raw := info.Metadata["products"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &products); err != nil {
			return nil, fmt.Errorf("failed to decode product snapshot: %w", err)
		}
	}

	now := time.Now()
	order := &domain.Order{
		ID:              uuid.New(),
		UserID:          user.ID,
		Products:        products,
		TotalAmount:     info.AmountTotal,
		StripeSessionID: sessionID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Clear the cart now that the purchase is recorded
	if err := s.userRepo.UpdateCart(ctx, user.ID, []domain.CartItem{}); err != nil {
		logger.Get().Warn("failed to clear cart after checkout",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
	}

	return order, nil
}
