package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/RuslanKralin/e-commerce-store/internal/dto"
	"github.com/RuslanKralin/e-commerce-store/internal/middleware"
	"github.com/RuslanKralin/e-commerce-store/internal/service"
	"github.com/RuslanKralin/e-commerce-store/pkg/response"
)

// CouponHandler handles coupon HTTP endpoints
type CouponHandler struct {
	couponService service.CouponService
}

// NewCouponHandler creates a new CouponHandler
func NewCouponHandler(couponService service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// GetCoupon handles GET /coupons. Returns the user's active coupon, or
// null when they have none.
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	user := middleware.CurrentUser(c)

	coupon, err := h.couponService.GetActiveCoupon(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, coupon)
}

// ValidateCoupon handles POST /coupons/validate
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	coupon, err := h.couponService.Validate(c.Request.Context(), req.Code, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			response.NotFound(c, "Coupon not found")
		case errors.Is(err, service.ErrCouponExpired):
			response.BadRequest(c, "Coupon expired")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Success(c, dto.CouponValidationResponse{
		Message:            "Coupon is valid",
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
	})
}
