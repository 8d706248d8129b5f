package router

import (
	"orbitmarket/internal/adapter/api/handler"
	"orbitmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	e.POST("/v1/checkout", paymentHandler.CreateCheckoutSession,
		authMiddleware.Authenticate, middleware.CheckoutRateLimit())

	// Webhook authenticates by signature, not bearer token.
	e.POST("/v1/webhooks/stripe", paymentHandler.HandleStripeWebhook)
}
