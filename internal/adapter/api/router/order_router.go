package router

import (
	"orbitmarket/internal/adapter/api/handler"
	"orbitmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.POST("/:id/start", orderHandler.Start)
	orders.POST("/:id/deliver", orderHandler.Deliver)
	orders.POST("/:id/revision", orderHandler.RequestRevision)
	orders.POST("/:id/complete", orderHandler.Complete)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.POST("/:id/dispute", orderHandler.Dispute)
}
