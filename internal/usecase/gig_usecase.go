package usecase

import (
	"context"

	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/domain/repository"
	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/utils"
)

type GigUseCase struct {
	gigRepo  repository.GigRepository
	userRepo repository.UserRepository
}

func NewGigUseCase(gigRepo repository.GigRepository, userRepo repository.UserRepository) *GigUseCase {
	return &GigUseCase{
		gigRepo:  gigRepo,
		userRepo: userRepo,
	}
}

type GigInput struct {
	Title       string
	Description string
	Category    string
	Subcategory string
	Tags        []string
	Images      []string
	CoverImage  string
	Pricing     map[entity.PricingTier]entity.TierPricing
	FAQ         []entity.FAQ
}

func (uc *GigUseCase) CreateGig(ctx context.Context, sellerID string, input GigInput) (*entity.Gig, error) {
	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.IsSeller() {
		return nil, errors.Forbidden("Only sellers can create gigs", nil)
	}

	if err := validatePricing(input.Pricing); err != nil {
		return nil, err
	}

	gig := &entity.Gig{
		SellerID:    sellerID,
		SellerName:  seller.DisplayName,
		SellerPhoto: seller.PhotoURL,
		Title:       input.Title,
		Slug:        utils.Slugify(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Tags:        input.Tags,
		Images:      input.Images,
		CoverImage:  input.CoverImage,
		Pricing:     input.Pricing,
		FAQ:         input.FAQ,
		Status:      entity.GigStatusDraft,
	}

	if err := uc.gigRepo.Create(ctx, gig); err != nil {
		return nil, err
	}

	return gig, nil
}

func (uc *GigUseCase) UpdateGig(ctx context.Context, sellerID, gigID string, input GigInput) (*entity.Gig, error) {
	gig, err := uc.requireOwner(ctx, sellerID, gigID)
	if err != nil {
		return nil, err
	}

	if err := validatePricing(input.Pricing); err != nil {
		return nil, err
	}

	gig.Title = input.Title
	gig.Slug = utils.Slugify(input.Title)
	gig.Description = input.Description
	gig.Category = input.Category
	gig.Subcategory = input.Subcategory
	gig.Tags = input.Tags
	gig.Images = input.Images
	gig.CoverImage = input.CoverImage
	gig.Pricing = input.Pricing
	gig.FAQ = input.FAQ

	if err := uc.gigRepo.Update(ctx, gig); err != nil {
		return nil, err
	}

	return gig, nil
}

func (uc *GigUseCase) DeleteGig(ctx context.Context, sellerID, gigID string) error {
	if _, err := uc.requireOwner(ctx, sellerID, gigID); err != nil {
		return err
	}

	return uc.gigRepo.Delete(ctx, gigID)
}

func (uc *GigUseCase) SetStatus(ctx context.Context, sellerID, gigID, status string) (*entity.Gig, error) {
	gig, err := uc.requireOwner(ctx, sellerID, gigID)
	if err != nil {
		return nil, err
	}

	switch entity.GigStatus(status) {
	case entity.GigStatusDraft, entity.GigStatusActive, entity.GigStatusPaused:
	default:
		return nil, errors.BadRequest("Invalid gig status", nil)
	}

	if err := uc.gigRepo.UpdateFields(ctx, gigID, map[string]interface{}{
		"status": status,
	}); err != nil {
		return nil, err
	}

	gig.Status = entity.GigStatus(status)
	return gig, nil
}

// GetByID serves the public gig detail. Drafts and paused gigs stay
// hidden from everyone but their owner; viewerID is empty for anonymous
// callers.
func (uc *GigUseCase) GetByID(ctx context.Context, viewerID, id string) (*entity.Gig, error) {
	gig, err := uc.gigRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.visibleTo(gig, viewerID)
}

func (uc *GigUseCase) GetBySlug(ctx context.Context, viewerID, slug string) (*entity.Gig, error) {
	gig, err := uc.gigRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return uc.visibleTo(gig, viewerID)
}

func (uc *GigUseCase) visibleTo(gig *entity.Gig, viewerID string) (*entity.Gig, error) {
	if gig.Status != entity.GigStatusActive && gig.SellerID != viewerID {
		return nil, errors.NotFound("Gig", nil)
	}
	return gig, nil
}

func (uc *GigUseCase) ListActive(ctx context.Context, category string, limit, offset int) ([]*entity.Gig, int64, error) {
	return uc.gigRepo.ListActive(ctx, repository.GigFilter{Category: category}, limit, offset)
}

func (uc *GigUseCase) ListMine(ctx context.Context, sellerID string) ([]*entity.Gig, error) {
	return uc.gigRepo.ListBySeller(ctx, sellerID)
}

func (uc *GigUseCase) requireOwner(ctx context.Context, sellerID, gigID string) (*entity.Gig, error) {
	gig, err := uc.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig.SellerID != sellerID {
		return nil, errors.Forbidden("You do not own this gig", nil)
	}
	return gig, nil
}

// validatePricing checks the cross-tier rules the request validator cannot
// express: all three tiers present with sane bounds.
func validatePricing(pricing map[entity.PricingTier]entity.TierPricing) error {
	for _, tier := range []entity.PricingTier{entity.TierBasic, entity.TierStandard, entity.TierPremium} {
		p, ok := pricing[tier]
		if !ok {
			return errors.BadRequest("Missing pricing tier: "+string(tier), nil)
		}
		if p.Price < 5 || p.Price > 50000 {
			return errors.BadRequest("Tier price must be between $5 and $50,000", nil)
		}
		if p.DeliveryDays < 1 || p.DeliveryDays > 365 {
			return errors.BadRequest("Delivery must be between 1 and 365 days", nil)
		}
		if p.Revisions < 0 || p.Revisions > 100 {
			return errors.BadRequest("Revisions must be between 0 and 100", nil)
		}
	}
	return nil
}
