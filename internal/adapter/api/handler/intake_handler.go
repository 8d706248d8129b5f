package handler

import (
	"orbitmarket/internal/usecase"
	"orbitmarket/pkg/response"

	"github.com/labstack/echo/v4"
)

type IntakeHandler struct {
	intakeUseCase *usecase.IntakeUseCase
}

func NewIntakeHandler(intakeUseCase *usecase.IntakeUseCase) *IntakeHandler {
	return &IntakeHandler{
		intakeUseCase: intakeUseCase,
	}
}

func (h *IntakeHandler) SubmitContact(c echo.Context) error {
	var req usecase.ContactInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.intakeUseCase.SubmitContact(c.Request().Context(), req); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "sent"})
}

func (h *IntakeHandler) SubmitFreelancerApplication(c echo.Context) error {
	var req usecase.FreelancerApplicationInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.intakeUseCase.SubmitFreelancerApplication(c.Request().Context(), req); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "sent"})
}
