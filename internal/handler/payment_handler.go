package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/RuslanKralin/e-commerce-store/internal/dto"
	"github.com/RuslanKralin/e-commerce-store/internal/middleware"
	"github.com/RuslanKralin/e-commerce-store/internal/service"
	"github.com/RuslanKralin/e-commerce-store/pkg/response"
)

// PaymentHandler handles checkout HTTP endpoints
type PaymentHandler struct {
	checkoutService service.CheckoutService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(checkoutService service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{checkoutService: checkoutService}
}

// CreateCheckoutSession handles POST /payments/create-checkout-session
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.checkoutService.CreateSession(c.Request.Context(), user, &req)
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
	response.Success(c, resp)
}

// CheckoutSuccess handles POST /payments/checkout-success
func (h *PaymentHandler) CheckoutSuccess(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.CheckoutSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.checkoutService.ConfirmSuccess(c.Request.Context(), user, req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotCompleted):
			response.BadRequest(c, "Payment not completed")
		case errors.Is(err, service.ErrSessionMismatch):
			response.Forbidden(c, "Session does not belong to this user")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Success(c, dto.CheckoutSuccessResponse{
		Message: "Payment successful, order created",
		OrderID: order.ID.String(),
	})
}
