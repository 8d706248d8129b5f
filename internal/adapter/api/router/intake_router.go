package router

import (
	"orbitmarket/internal/adapter/api/handler"
	"orbitmarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupIntakeRouter(e *echo.Echo) {
	intakeHandler := handler.GetIntakeHandler()

	intake := e.Group("/v1")
	intake.Use(middleware.IntakeRateLimit())
	intake.POST("/contact", intakeHandler.SubmitContact)
	intake.POST("/freelancer", intakeHandler.SubmitFreelancerApplication)
}
