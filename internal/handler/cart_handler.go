package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RuslanKralin/e-commerce-store/internal/dto"
	"github.com/RuslanKralin/e-commerce-store/internal/middleware"
	"github.com/RuslanKralin/e-commerce-store/internal/service"
	"github.com/RuslanKralin/e-commerce-store/pkg/response"
)

// CartHandler handles cart HTTP endpoints
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	products, err := h.cartService.GetCartProducts(c.Request.Context(), user)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, products)
}

// AddToCart handles POST /cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	items, err := h.cartService.AddToCart(c.Request.Context(), user, productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, items)
}

// UpdateQuantity handles PUT /cart/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	user := middleware.CurrentUser(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items, err := h.cartService.UpdateQuantity(c.Request.Context(), user, productID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotInCart) {
			response.NotFound(c, "Product not found in cart")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, items)
}

// RemoveFromCart handles DELETE /cart. An empty or missing product ID
// clears the whole cart.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.RemoveFromCartRequest
	_ = c.ShouldBindJSON(&req)

	var productID *uuid.UUID
	if req.ProductID != "" {
		id, err := uuid.Parse(req.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID")
			return
		}
		productID = &id
	}

	items, err := h.cartService.RemoveFromCart(c.Request.Context(), user, productID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, items)
}
