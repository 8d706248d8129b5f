package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/domain/repository"
	"orbitmarket/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) GetByStripeSessionID(ctx context.Context, sessionID string) (*entity.Order, error) {
	query := r.client.Collection("orders").Where("stripeSessionId", "==", sessionID).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()

	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Order for checkout session", nil)
		}
		return nil, errors.Internal("Failed to query order by session", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, userID string, asSeller bool, limit, offset int) ([]*entity.Order, int64, error) {
	field := "buyerId"
	if asSeller {
		field = "sellerId"
	}

	query := r.client.Collection("orders").Query.
		Where(field, "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

// Transition runs fn against a transactional read of the order so status
// guards are checked against the committed document, not a stale client copy.
func (r *firestoreOrderRepository) Transition(ctx context.Context, id string, fn func(current *entity.Order) (map[string]interface{}, error)) (*entity.Order, error) {
	ref := r.client.Collection("orders").Doc(id)
	var result entity.Order

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Order", err)
			}
			return errors.Internal("Failed to get order", err)
		}

		var current entity.Order
		if err := doc.DataTo(&current); err != nil {
			return errors.Internal("Failed to parse order data", err)
		}

		fields, err := fn(&current)
		if err != nil {
			return err
		}

		// fn may decide there is nothing to write (idempotent no-op).
		if len(fields) == 0 {
			result = current
			return nil
		}

		updates := make([]firestore.Update, 0, len(fields)+1)
		for path, value := range fields {
			updates = append(updates, firestore.Update{Path: path, Value: value})
		}
		now := time.Now()
		updates = append(updates, firestore.Update{Path: "updatedAt", Value: now})

		if err := tx.Update(ref, updates); err != nil {
			return errors.Internal("Failed to update order", err)
		}

		result = current
		applyOrderFields(&result, fields, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// applyOrderFields mirrors the written updates onto the returned snapshot so
// callers see the post-transition state without a second read.
func applyOrderFields(order *entity.Order, fields map[string]interface{}, now time.Time) {
	order.UpdatedAt = now
	for path, value := range fields {
		switch path {
		case "status":
			if s, ok := value.(string); ok {
				order.Status = entity.OrderStatus(s)
			}
		case "deliverables":
			if d, ok := value.([]entity.Deliverable); ok {
				order.Deliverables = d
			}
		case "revisionCount":
			// Written as firestore.Increment(1); the read snapshot had the
			// pre-increment value.
			order.RevisionCount++
		case "revisionMessage":
			if s, ok := value.(string); ok {
				order.RevisionMessage = s
			}
		case "completedAt":
			if t, ok := value.(time.Time); ok {
				order.CompletedAt = &t
			}
		}
	}
}
