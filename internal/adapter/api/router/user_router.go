package router

import (
	"orbitmarket/internal/adapter/api/handler"
	"orbitmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	auth := e.Group("/v1/auth")
	auth.Use(authMiddleware.Authenticate)
	auth.POST("/sync", userHandler.SyncUser)

	users := e.Group("/v1/users")
	users.GET("/:id", userHandler.GetPublicProfile)

	me := e.Group("/v1/users/me")
	me.Use(authMiddleware.Authenticate)
	me.GET("", userHandler.GetMe)
	me.PATCH("", userHandler.UpdateProfile)
}
