package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderProduct is a purchased line item snapshot stored with the order
type OrderProduct struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// Order is a completed purchase recorded after checkout succeeds
type Order struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"userId"`
	Products        []OrderProduct `json:"products"`
	TotalAmount     float64        `json:"totalAmount"`
	StripeSessionID string         `json:"stripeSessionId"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
