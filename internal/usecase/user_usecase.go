package usecase

import (
	"context"
	"time"

	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/domain/repository"
	"orbitmarket/internal/infrastructure/firebase"
	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/logger"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	authClient *firebase.AuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, authClient *firebase.AuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

// SyncUser mirrors the Firebase identity into the users collection. Called
// after sign-in; creates the document on first sign-in, otherwise refreshes
// the identity fields. Users are never hard-deleted.
func (uc *UserUseCase) SyncUser(ctx context.Context, uid string) (*entity.User, error) {
	record, err := uc.authClient.GetUser(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to load auth user", err)
	}

	existing, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		fields := map[string]interface{}{
			"email":       record.Email,
			"displayName": record.DisplayName,
			"photoURL":    record.PhotoURL,
		}
		if err := uc.userRepo.UpdateFields(ctx, uid, fields); err != nil {
			return nil, err
		}
		existing.Email = record.Email
		existing.DisplayName = record.DisplayName
		existing.PhotoURL = record.PhotoURL
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	user := &entity.User{
		ID:          uid,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhotoURL:    record.PhotoURL,
		Role:        entity.RoleBuyer,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Created user document for %s", uid)
	return user, nil
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

type UpdateProfileInput struct {
	DisplayName string
	PhotoURL    string
	Role        string

	SellerProfile *SellerProfileInput
}

type SellerProfileInput struct {
	Tagline       string
	Bio           string
	Skills        []string
	Languages     []entity.Language
	HourlyRate    float64
	ResponseTime  string
	PortfolioURLs []string
	Github        string
	Linkedin      string
	Fiverr        string
	Available     bool
	Country       string
}

// UpdateProfile applies profile edits. Becoming a seller for the first time
// initializes the seller aggregate fields.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.PhotoURL != "" {
		user.PhotoURL = input.PhotoURL
	}
	if input.Role != "" {
		switch entity.UserRole(input.Role) {
		case entity.RoleBuyer, entity.RoleSeller, entity.RoleBoth:
			user.Role = entity.UserRole(input.Role)
		default:
			return nil, errors.BadRequest("Invalid role", nil)
		}
	}

	if input.SellerProfile != nil {
		sp := user.SellerProfile
		if sp == nil {
			sp = &entity.SellerProfile{
				Level:       "new",
				MemberSince: time.Now(),
			}
		}
		sp.Tagline = input.SellerProfile.Tagline
		sp.Bio = input.SellerProfile.Bio
		sp.Skills = input.SellerProfile.Skills
		sp.Languages = input.SellerProfile.Languages
		sp.HourlyRate = input.SellerProfile.HourlyRate
		sp.ResponseTime = input.SellerProfile.ResponseTime
		sp.PortfolioURLs = input.SellerProfile.PortfolioURLs
		sp.Github = input.SellerProfile.Github
		sp.Linkedin = input.SellerProfile.Linkedin
		sp.Fiverr = input.SellerProfile.Fiverr
		sp.Available = input.SellerProfile.Available
		sp.Country = input.SellerProfile.Country
		user.SellerProfile = sp
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// PublicProfile strips private fields for unauthenticated consumption.
type PublicProfile struct {
	ID            string                `json:"id"`
	DisplayName   string                `json:"display_name"`
	PhotoURL      string                `json:"photo_url,omitempty"`
	Role          entity.UserRole       `json:"role"`
	SellerProfile *entity.SellerProfile `json:"seller_profile,omitempty"`
	Rating        float64               `json:"rating"`
}

func (uc *UserUseCase) GetPublicProfile(ctx context.Context, id string) (*PublicProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &PublicProfile{
		ID:            user.ID,
		DisplayName:   user.DisplayName,
		PhotoURL:      user.PhotoURL,
		Role:          user.Role,
		SellerProfile: user.SellerProfile,
	}
	if user.SellerProfile != nil {
		profile.Rating = user.SellerProfile.Rating()
	}

	return profile, nil
}
