package router

import (
	"orbitmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupHealthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupGigRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupPaymentRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupIntakeRouter(e)
	SetupAssistantRouter(e)
	SetupChatRouter(e, authMiddleware)
	SetupWebSocketRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
}
