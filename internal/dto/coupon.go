package dto

// ValidateCouponRequest represents coupon validation request
type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// CouponValidationResponse is returned when a coupon is valid
type CouponValidationResponse struct {
	Message            string `json:"message"`
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discountPercentage"`
}
