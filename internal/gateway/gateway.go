package gateway

import "context"

// LineItem is one product line priced for checkout
type LineItem struct {
	Name      string
	Image     string
	UnitPrice float64
	Quantity  int
}

// CheckoutSessionRequest describes a hosted checkout session to create
type CheckoutSessionRequest struct {
	LineItems          []LineItem
	DiscountPercentage int
	SuccessURL         string
	CancelURL          string
	Metadata           map[string]string
}

// CheckoutSessionResult is the created session reference
type CheckoutSessionResult struct {
	ID  string
	URL string
}

// CheckoutSessionInfo is the provider's view of an existing session
type CheckoutSessionInfo struct {
	ID          string
	Paid        bool
	AmountTotal float64
	Metadata    map[string]string
}

// CheckoutGateway abstracts the hosted checkout provider
type CheckoutGateway interface {
	// CreateCheckoutSession creates a hosted checkout session
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResult, error)
	// GetCheckoutSession retrieves an existing session by ID
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSessionInfo, error)
}
