package repository

import (
	"context"
	"orbitmarket/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error

	// RecordCompletedOrder atomically bumps the seller's earnings and
	// completed-order counters.
	RecordCompletedOrder(ctx context.Context, sellerID string, earnings float64) error

	// RecordReview atomically folds a new rating into the seller aggregate.
	RecordReview(ctx context.Context, sellerID string, rating int) error
}
