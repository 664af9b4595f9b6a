package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is a per-user discount code
type Coupon struct {
	ID                 uuid.UUID `json:"id"`
	Code               string    `json:"code"`
	DiscountPercentage int       `json:"discountPercentage"`
	ExpirationDate     time.Time `json:"expirationDate"`
	IsActive           bool      `json:"isActive"`
	UserID             uuid.UUID `json:"userId"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// IsExpired reports whether the coupon's expiration date has passed
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpirationDate.Before(now)
}
