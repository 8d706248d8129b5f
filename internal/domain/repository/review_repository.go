package repository

import (
	"context"
	"orbitmarket/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetByOrderID(ctx context.Context, orderID string) (*entity.Review, error)
	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Review, int64, error)
	ListByGig(ctx context.Context, gigID string, limit, offset int) ([]*entity.Review, int64, error)
	Update(ctx context.Context, review *entity.Review) error
}
