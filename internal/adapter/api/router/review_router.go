package router

import (
	"orbitmarket/internal/adapter/api/handler"
	"orbitmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/reviews", reviewHandler.ListReviews)

	reviews := e.Group("/v1/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.POST("", reviewHandler.CreateReview)
	reviews.POST("/:id/response", reviewHandler.Respond)
}
