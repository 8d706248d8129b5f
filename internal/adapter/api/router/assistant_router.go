package router

import (
	"orbitmarket/internal/adapter/api/handler"
	"orbitmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAssistantRouter(e *echo.Echo) {
	assistantHandler := handler.GetAssistantHandler()

	assistant := e.Group("/v1/assistant")
	assistant.Use(middleware.AssistantRateLimit())
	assistant.POST("/chat", assistantHandler.Chat)
}
