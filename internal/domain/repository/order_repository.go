package repository

import (
	"context"
	"orbitmarket/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetByStripeSessionID(ctx context.Context, sessionID string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string, asSeller bool, limit, offset int) ([]*entity.Order, int64, error)

	// Transition reads the order inside a transaction, applies fn to decide
	// the field updates, and writes them against the read snapshot. fn
	// returning an error aborts the transaction.
	Transition(ctx context.Context, id string, fn func(current *entity.Order) (map[string]interface{}, error)) (*entity.Order, error)
}
