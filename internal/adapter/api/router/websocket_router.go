package router

import (
	"orbitmarket/internal/adapter/api/handler"
	"orbitmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wsHandler := handler.GetWebSocketHandler()

	// Browsers cannot set an Authorization header on the upgrade request,
	// so the token arrives as a query parameter.
	e.GET("/v1/ws", wsHandler.HandleWebSocket, tokenFromQuery(authMiddleware))
}

func tokenFromQuery(authMiddleware *middleware.AuthMiddleware) func(echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := c.QueryParam("token"); token != "" && c.Request().Header.Get("Authorization") == "" {
				c.Request().Header.Set("Authorization", "Bearer "+token)
			}
			return authMiddleware.Authenticate(next)(c)
		}
	}
}
