package handler

import (
	"io"
	"net/http"

	"orbitmarket/internal/domain/service"
	"orbitmarket/internal/usecase"
	"orbitmarket/pkg/logger"
	"orbitmarket/pkg/response"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	orderUseCase   *usecase.OrderUseCase
	paymentService service.PaymentGatewayService
}

func NewPaymentHandler(orderUseCase *usecase.OrderUseCase, paymentService service.PaymentGatewayService) *PaymentHandler {
	return &PaymentHandler{
		orderUseCase:   orderUseCase,
		paymentService: paymentService,
	}
}

type checkoutRequest struct {
	GigID        string `json:"gig_id" validate:"required"`
	Tier         string `json:"tier" validate:"required,oneof=basic standard premium"`
	Requirements string `json:"requirements" validate:"omitempty,max=5000"`
}

func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	session, err := h.orderUseCase.Checkout(c.Request().Context(), uid, usecase.CheckoutInput{
		GigID:        req.GigID,
		Tier:         req.Tier,
		Requirements: req.Requirements,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, session)
}

// HandleStripeWebhook verifies the event signature against the raw body and
// creates the order for checkout.session.completed events. Unhandled event
// types are acknowledged so Stripe stops retrying them.
func (h *PaymentHandler) HandleStripeWebhook(c echo.Context) error {
	if h.paymentService == nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	checkout, err := h.paymentService.VerifyWebhook(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		logger.Warn("Rejected webhook: %v", err)
		return c.NoContent(http.StatusBadRequest)
	}

	if checkout == nil {
		return c.JSON(http.StatusOK, map[string]bool{"received": true})
	}

	order, err := h.orderUseCase.HandleCheckoutCompleted(c.Request().Context(), checkout)
	if err != nil {
		logger.Error("Failed to process checkout session %s: %v", checkout.SessionID, err)
		// Non-2xx makes Stripe retry with the same session id; the
		// idempotency lookup keeps the retry safe.
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"received": true,
		"order_id": order.ID,
	})
}
