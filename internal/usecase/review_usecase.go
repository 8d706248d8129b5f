package usecase

import (
	"context"

	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/domain/repository"
	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
	gigRepo    repository.GigRepository
	userRepo   repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
	gigRepo repository.GigRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
		gigRepo:    gigRepo,
		userRepo:   userRepo,
	}
}

type CreateReviewInput struct {
	OrderID string `json:"order_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,min=10,max=1000"`
}

// CreateReview accepts one review per completed order, written by the buyer.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, buyerID string, input CreateReviewInput) (*entity.Review, error) {
	order, err := uc.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, errors.Forbidden("Only the buyer can review the order", nil)
	}
	if order.Status != entity.OrderStatusCompleted {
		return nil, errors.BadRequest("Order must be completed before it can be reviewed", nil)
	}

	if _, err := uc.reviewRepo.GetByOrderID(ctx, input.OrderID); err == nil {
		return nil, errors.Conflict("Order has already been reviewed", nil)
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		OrderID:    order.ID,
		GigID:      order.GigID,
		SellerID:   order.SellerID,
		BuyerID:    buyerID,
		BuyerName:  buyer.DisplayName,
		BuyerPhoto: buyer.PhotoURL,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Rating aggregates are stored as sum plus count so concurrent reviews
	// can increment without a read-modify-write race.
	if err := uc.gigRepo.RecordReview(ctx, order.GigID, input.Rating); err != nil {
		logger.Warn("Failed to update gig rating aggregates for review %s: %v", review.ID, err)
	}
	if err := uc.userRepo.RecordReview(ctx, order.SellerID, input.Rating); err != nil {
		logger.Warn("Failed to update seller rating aggregates for review %s: %v", review.ID, err)
	}

	return review, nil
}

type RespondReviewInput struct {
	Response string `json:"response" validate:"required,min=1,max=2000"`
}

// Respond records the seller's one public reply on a review.
func (uc *ReviewUseCase) Respond(ctx context.Context, sellerID, reviewID string, input RespondReviewInput) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.SellerID != sellerID {
		return nil, errors.Forbidden("Only the reviewed seller can respond", nil)
	}
	if review.SellerResponse != "" {
		return nil, errors.Conflict("Review already has a response", nil)
	}

	review.SellerResponse = input.Response
	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// ReviewStats summarizes the full review population for a seller or gig,
// independent of the requested page.
type ReviewStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

func (uc *ReviewUseCase) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Review, int64, ReviewStats, error) {
	reviews, total, err := uc.reviewRepo.ListBySeller(ctx, sellerID, limit, offset)
	if err != nil {
		return nil, 0, ReviewStats{}, err
	}

	var stats ReviewStats
	if seller, err := uc.userRepo.GetByID(ctx, sellerID); err == nil && seller.SellerProfile != nil {
		stats = ReviewStats{
			Count:   seller.SellerProfile.ReviewCount,
			Average: seller.SellerProfile.Rating(),
		}
	}

	return reviews, total, stats, nil
}

func (uc *ReviewUseCase) ListByGig(ctx context.Context, gigID string, limit, offset int) ([]*entity.Review, int64, ReviewStats, error) {
	reviews, total, err := uc.reviewRepo.ListByGig(ctx, gigID, limit, offset)
	if err != nil {
		return nil, 0, ReviewStats{}, err
	}

	var stats ReviewStats
	if gig, err := uc.gigRepo.GetByID(ctx, gigID); err == nil {
		stats = ReviewStats{
			Count:   gig.ReviewCount,
			Average: gig.Rating(),
		}
	}

	return reviews, total, stats, nil
}
