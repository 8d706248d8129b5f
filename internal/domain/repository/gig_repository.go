package repository

import (
	"context"
	"orbitmarket/internal/domain/entity"
)

// GigFilter narrows ListActive. Zero values mean no constraint.
type GigFilter struct {
	Category string
}

type GigRepository interface {
	Create(ctx context.Context, gig *entity.Gig) error
	GetByID(ctx context.Context, id string) (*entity.Gig, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Gig, error)
	Update(ctx context.Context, gig *entity.Gig) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	ListActive(ctx context.Context, filter GigFilter, limit, offset int) ([]*entity.Gig, int64, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Gig, error)

	// IncrementOrderCount / RecordReview maintain the denormalized counters
	// with single-document atomic increments.
	IncrementOrderCount(ctx context.Context, id string) error
	RecordReview(ctx context.Context, id string, rating int) error
}
