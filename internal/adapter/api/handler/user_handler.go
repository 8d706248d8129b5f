package handler

import (
	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/usecase"
	"orbitmarket/pkg/response"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// SyncUser upserts the Firestore profile from the verified Firebase token.
// The client calls it once after sign-in.
func (h *UserHandler) SyncUser(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.SyncUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetMe(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type languageRequest struct {
	Language string `json:"language" validate:"required,min=2,max=50"`
	Level    string `json:"level" validate:"required,oneof=basic conversational fluent native"`
}

type sellerProfileRequest struct {
	Tagline       string   `json:"tagline" validate:"omitempty,max=200"`
	Bio           string   `json:"bio" validate:"omitempty,max=5000"`
	Skills        []string `json:"skills" validate:"omitempty,max=30,dive,min=1,max=50"`
	Languages     []languageRequest `json:"languages" validate:"omitempty,dive"`
	HourlyRate    float64  `json:"hourly_rate" validate:"omitempty,gte=0"`
	ResponseTime  string   `json:"response_time" validate:"omitempty,max=50"`
	PortfolioURLs []string `json:"portfolio_urls" validate:"omitempty,max=20,dive,url"`
	Github        string   `json:"github" validate:"omitempty,url"`
	Linkedin      string   `json:"linkedin" validate:"omitempty,url"`
	Fiverr        string   `json:"fiverr" validate:"omitempty,url"`
	Available     bool     `json:"available"`
	Country       string   `json:"country" validate:"omitempty,max=100"`
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,min=2,max=100"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
	Role        string `json:"role" validate:"omitempty,oneof=buyer seller both"`

	SellerProfile *sellerProfileRequest `json:"seller_profile,omitempty"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	input := usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Role:        req.Role,
	}
	if req.SellerProfile != nil {
		sp := &usecase.SellerProfileInput{
			Tagline:       req.SellerProfile.Tagline,
			Bio:           req.SellerProfile.Bio,
			Skills:        req.SellerProfile.Skills,
			HourlyRate:    req.SellerProfile.HourlyRate,
			ResponseTime:  req.SellerProfile.ResponseTime,
			PortfolioURLs: req.SellerProfile.PortfolioURLs,
			Github:        req.SellerProfile.Github,
			Linkedin:      req.SellerProfile.Linkedin,
			Fiverr:        req.SellerProfile.Fiverr,
			Available:     req.SellerProfile.Available,
			Country:       req.SellerProfile.Country,
		}
		for _, lang := range req.SellerProfile.Languages {
			sp.Languages = append(sp.Languages, entity.Language{
				Language: lang.Language,
				Level:    lang.Level,
			})
		}
		input.SellerProfile = sp
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetPublicProfile(c echo.Context) error {
	id := c.Param("id")

	profile, err := h.userUseCase.GetPublicProfile(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}
