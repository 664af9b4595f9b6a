package gateway

import (
	"context"
	"fmt"
	"sync"
)

// MockGateway implements CheckoutGateway for tests and local development
type MockGateway struct {
	mu       sync.Mutex
	counter  int
	sessions map[string]*CheckoutSessionInfo

	// FailCreate makes CreateCheckoutSession return an error
	FailCreate bool
}

// NewMockGateway creates a new mock gateway
func NewMockGateway() *MockGateway {
	return &MockGateway{
		sessions: make(map[string]*CheckoutSessionInfo),
	}
}

// CreateCheckoutSession creates an in-memory session marked as paid
func (g *MockGateway) CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResult, error) {
	if g.FailCreate {
		return nil, fmt.Errorf("mock gateway: create failed")
	}
	if req == nil || len(req.LineItems) == 0 {
		return nil, fmt.Errorf("at least one line item is required")
	}

	var total float64
	for _, item := range req.LineItems {
		total += item.UnitPrice * float64(item.Quantity)
	}
	if req.DiscountPercentage > 0 {
		total -= total * float64(req.DiscountPercentage) / 100
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++
	id := fmt.Sprintf("cs_mock_%d", g.counter)
	g.sessions[id] = &CheckoutSessionInfo{
		ID:          id,
		Paid:        true,
		AmountTotal: total,
		Metadata:    req.Metadata,
	}

	return &CheckoutSessionResult{
		ID:  id,
		URL: "https://checkout.mock.local/" + id,
	}, nil
}

// GetCheckoutSession retrieves a previously created session
func (g *MockGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSessionInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	info, ok := g.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("mock gateway: session %s not found", sessionID)
	}
	return info, nil
}
