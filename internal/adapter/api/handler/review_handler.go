package handler

import (
	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/usecase"
	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/response"
	"orbitmarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req usecase.CreateReviewInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) Respond(c echo.Context) error {
	var req usecase.RespondReviewInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	review, err := h.reviewUseCase.Respond(c.Request().Context(), uid, c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

type reviewListResponse struct {
	Reviews []*entity.Review    `json:"reviews"`
	Total   int64               `json:"total"`
	Stats   usecase.ReviewStats `json:"stats"`
}

// ListReviews serves public reviews filtered by sellerId or gigId, with the
// population-level aggregate alongside the page.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	var (
		reviews []*entity.Review
		total   int64
		stats   usecase.ReviewStats
		err     error
	)

	switch {
	case c.QueryParam("sellerId") != "":
		reviews, total, stats, err = h.reviewUseCase.ListBySeller(c.Request().Context(), c.QueryParam("sellerId"), pagination.PageSize, pagination.Offset)
	case c.QueryParam("gigId") != "":
		reviews, total, stats, err = h.reviewUseCase.ListByGig(c.Request().Context(), c.QueryParam("gigId"), pagination.PageSize, pagination.Offset)
	default:
		return response.Error(c, errors.BadRequest("Either sellerId or gigId is required", nil))
	}
	if err != nil {
		return response.Error(c, err)
	}

	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return response.Success(c, reviewListResponse{
		Reviews: reviews,
		Total:   total,
		Stats:   stats,
	})
}
