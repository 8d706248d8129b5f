package router

import (
	"orbitmarket/internal/adapter/api/handler"
	"orbitmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)
	conversations.POST("", chatHandler.StartConversation)
	conversations.GET("", chatHandler.ListConversations)
	conversations.GET("/:id", chatHandler.GetConversation)
	conversations.POST("/:id/messages", chatHandler.SendMessage)
	conversations.GET("/:id/messages", chatHandler.ListMessages)
	conversations.POST("/:id/read", chatHandler.MarkRead)
}
