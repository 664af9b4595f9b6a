package dto

// CheckoutProduct is a cart line submitted to checkout
type CheckoutProduct struct {
	ID       string  `json:"id" binding:"required,uuid"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gte=0"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity" binding:"required,gte=1"`
}

// CreateCheckoutSessionRequest represents checkout session creation request
type CreateCheckoutSessionRequest struct {
	Products   []CheckoutProduct `json:"products" binding:"required,min=1,dive"`
	CouponCode string            `json:"couponCode"`
}

// CheckoutSessionResponse carries the hosted checkout session reference
type CheckoutSessionResponse struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	TotalAmount float64 `json:"totalAmount"`
}

// CheckoutSuccessRequest confirms a completed checkout session
type CheckoutSuccessRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// CheckoutSuccessResponse is returned after an order is recorded
type CheckoutSuccessResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}
