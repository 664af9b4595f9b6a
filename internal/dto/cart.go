package dto

// AddToCartRequest adds one unit of a product to the cart
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
}

// UpdateQuantityRequest sets the quantity of a cart line
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"gte=0"`
}

// RemoveFromCartRequest removes a product line, or clears the cart when
// ProductID is empty
type RemoveFromCartRequest struct {
	ProductID string `json:"productId"`
}
