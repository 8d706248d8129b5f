package router

import (
	"orbitmarket/internal/adapter/api/handler"
	"orbitmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupGigRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	gigHandler := handler.GetGigHandler()

	gigs := e.Group("/v1/gigs")
	gigs.GET("", gigHandler.ListGigs)
	gigs.GET("/slug/:slug", gigHandler.GetGigBySlug, authMiddleware.OptionalAuthenticate)
	gigs.GET("/mine", gigHandler.ListMyGigs, authMiddleware.Authenticate)
	gigs.GET("/:id", gigHandler.GetGig, authMiddleware.OptionalAuthenticate)

	gigs.POST("", gigHandler.CreateGig, authMiddleware.Authenticate)
	gigs.PUT("/:id", gigHandler.UpdateGig, authMiddleware.Authenticate)
	gigs.DELETE("/:id", gigHandler.DeleteGig, authMiddleware.Authenticate)
	gigs.PATCH("/:id/status", gigHandler.SetStatus, authMiddleware.Authenticate)
}
