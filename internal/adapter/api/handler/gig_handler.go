package handler

import (
	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/usecase"
	"orbitmarket/pkg/response"
	"orbitmarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

type GigHandler struct {
	gigUseCase *usecase.GigUseCase
}

func NewGigHandler(gigUseCase *usecase.GigUseCase) *GigHandler {
	return &GigHandler{
		gigUseCase: gigUseCase,
	}
}

type tierPricingRequest struct {
	Title        string   `json:"title" validate:"required,min=2,max=50"`
	Description  string   `json:"description" validate:"required,min=10,max=200"`
	Price        float64  `json:"price" validate:"required,gte=5,lte=50000"`
	DeliveryDays int      `json:"delivery_days" validate:"required,gte=1,lte=365"`
	Revisions    int      `json:"revisions" validate:"gte=0,lte=100"`
	Features     []string `json:"features" validate:"omitempty,max=20,dive,min=1,max=200"`
}

type faqRequest struct {
	Question string `json:"question" validate:"required,min=5,max=300"`
	Answer   string `json:"answer" validate:"required,min=5,max=2000"`
}

type gigRequest struct {
	Title       string   `json:"title" validate:"required,min=10,max=120"`
	Description string   `json:"description" validate:"required,min=50,max=5000"`
	Category    string   `json:"category" validate:"required,oneof=ai web mobile design marketing other"`
	Subcategory string   `json:"subcategory" validate:"omitempty,min=2,max=50"`
	Tags        []string `json:"tags" validate:"required,min=1,max=10,dive,min=1,max=50"`
	Images      []string `json:"images" validate:"omitempty,max=10,dive,url"`
	CoverImage  string   `json:"cover_image" validate:"omitempty,url"`

	Pricing map[string]tierPricingRequest `json:"pricing" validate:"required,dive"`
	FAQ     []faqRequest                  `json:"faq" validate:"omitempty,max=20,dive"`
}

func (r *gigRequest) toInput() usecase.GigInput {
	pricing := make(map[entity.PricingTier]entity.TierPricing, len(r.Pricing))
	for tier, p := range r.Pricing {
		pricing[entity.PricingTier(tier)] = entity.TierPricing{
			Title:        p.Title,
			Description:  p.Description,
			Price:        p.Price,
			DeliveryDays: p.DeliveryDays,
			Revisions:    p.Revisions,
			Features:     p.Features,
		}
	}

	faq := make([]entity.FAQ, len(r.FAQ))
	for i, f := range r.FAQ {
		faq[i] = entity.FAQ{Question: f.Question, Answer: f.Answer}
	}

	return usecase.GigInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Tags:        r.Tags,
		Images:      r.Images,
		CoverImage:  r.CoverImage,
		Pricing:     pricing,
		FAQ:         faq,
	}
}

func (h *GigHandler) CreateGig(c echo.Context) error {
	var req gigRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	gig, err := h.gigUseCase.CreateGig(c.Request().Context(), sellerID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, gig)
}

func (h *GigHandler) UpdateGig(c echo.Context) error {
	id := c.Param("id")

	var req gigRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	gig, err := h.gigUseCase.UpdateGig(c.Request().Context(), sellerID, id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gig)
}

func (h *GigHandler) DeleteGig(c echo.Context) error {
	id := c.Param("id")
	sellerID := c.Get("uid").(string)

	if err := h.gigUseCase.DeleteGig(c.Request().Context(), sellerID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": id})
}

type gigStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active paused"`
}

func (h *GigHandler) SetStatus(c echo.Context) error {
	id := c.Param("id")

	var req gigStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	gig, err := h.gigUseCase.SetStatus(c.Request().Context(), sellerID, id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gig)
}

func (h *GigHandler) GetGig(c echo.Context) error {
	gig, err := h.gigUseCase.GetByID(c.Request().Context(), viewerID(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gig)
}

func (h *GigHandler) GetGigBySlug(c echo.Context) error {
	gig, err := h.gigUseCase.GetBySlug(c.Request().Context(), viewerID(c), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gig)
}

// viewerID returns the caller's UID when optional auth resolved one.
func viewerID(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

func (h *GigHandler) ListGigs(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	category := c.QueryParam("category")

	gigs, total, err := h.gigUseCase.ListActive(c.Request().Context(), category, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, gigs, total, pagination.Page, pagination.PageSize)
}

func (h *GigHandler) ListMyGigs(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	gigs, err := h.gigUseCase.ListMine(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gigs)
}
