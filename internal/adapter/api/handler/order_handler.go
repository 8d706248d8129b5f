package handler

import (
	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/usecase"
	"orbitmarket/pkg/response"
	"orbitmarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	role := c.QueryParam("role")
	if role == "" {
		role = "buyer"
	}

	orders, total, err := h.orderUseCase.ListByUser(c.Request().Context(), uid, role, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.GetByID(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) Start(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.Start(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

type deliverableRequest struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type deliverRequest struct {
	Deliverables []deliverableRequest `json:"deliverables" validate:"required,min=1,max=20,dive"`
}

func (h *OrderHandler) Deliver(c echo.Context) error {
	var req deliverRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	deliverables := make([]entity.Deliverable, len(req.Deliverables))
	for i, d := range req.Deliverables {
		deliverables[i] = entity.Deliverable{URL: d.URL, Name: d.Name}
	}

	order, err := h.orderUseCase.Deliver(c.Request().Context(), uid, c.Param("id"), usecase.DeliverInput{
		Deliverables: deliverables,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

type revisionRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

func (h *OrderHandler) RequestRevision(c echo.Context) error {
	var req revisionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.RequestRevision(c.Request().Context(), uid, c.Param("id"), req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) Complete(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.Complete(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.Cancel(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) Dispute(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.Dispute(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
