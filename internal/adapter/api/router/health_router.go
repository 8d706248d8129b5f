package router

import (
	"orbitmarket/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.NewHealthHandler()

	e.GET("/health", healthHandler.Check)
	e.GET("/v1/health", healthHandler.Check)
}
