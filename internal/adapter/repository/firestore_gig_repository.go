package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/domain/repository"
	"orbitmarket/pkg/errors"
)

type firestoreGigRepository struct {
	client *firestore.Client
}

func NewFirestoreGigRepository(client *firestore.Client) repository.GigRepository {
	return &firestoreGigRepository{
		client: client,
	}
}

func (r *firestoreGigRepository) Create(ctx context.Context, gig *entity.Gig) error {
	if gig.ID == "" {
		doc := r.client.Collection("gigs").NewDoc()
		gig.ID = doc.ID
	}

	now := time.Now()
	gig.CreatedAt = now
	gig.UpdatedAt = now

	_, err := r.client.Collection("gigs").Doc(gig.ID).Set(ctx, gig)
	if err != nil {
		return errors.Internal("Failed to create gig", err)
	}

	return nil
}

func (r *firestoreGigRepository) GetByID(ctx context.Context, id string) (*entity.Gig, error) {
	doc, err := r.client.Collection("gigs").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Gig", err)
		}
		return nil, errors.Internal("Failed to get gig", err)
	}

	var gig entity.Gig
	if err := doc.DataTo(&gig); err != nil {
		return nil, errors.Internal("Failed to parse gig data", err)
	}

	return &gig, nil
}

func (r *firestoreGigRepository) GetBySlug(ctx context.Context, slug string) (*entity.Gig, error) {
	// Slugs are not unique; take the first match.
	query := r.client.Collection("gigs").Where("slug", "==", slug).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()

	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Gig", nil)
		}
		return nil, errors.Internal("Failed to query gig by slug", err)
	}

	var gig entity.Gig
	if err := doc.DataTo(&gig); err != nil {
		return nil, errors.Internal("Failed to parse gig data", err)
	}

	return &gig, nil
}

func (r *firestoreGigRepository) Update(ctx context.Context, gig *entity.Gig) error {
	gig.UpdatedAt = time.Now()

	_, err := r.client.Collection("gigs").Doc(gig.ID).Set(ctx, gig)
	if err != nil {
		return errors.Internal("Failed to update gig", err)
	}

	return nil
}

func (r *firestoreGigRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})

	_, err := r.client.Collection("gigs").Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Gig", err)
		}
		return errors.Internal("Failed to update gig", err)
	}

	return nil
}

func (r *firestoreGigRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("gigs").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete gig", err)
	}

	return nil
}

func (r *firestoreGigRepository) ListActive(ctx context.Context, filter repository.GigFilter, limit, offset int) ([]*entity.Gig, int64, error) {
	query := r.client.Collection("gigs").Query.
		Where("status", "==", string(entity.GigStatusActive))

	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count gigs", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var gigs []*entity.Gig

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate gigs", err)
		}

		var gig entity.Gig
		if err := doc.DataTo(&gig); err != nil {
			return nil, 0, errors.Internal("Failed to parse gig data", err)
		}
		gigs = append(gigs, &gig)
	}

	return gigs, total, nil
}

func (r *firestoreGigRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Gig, error) {
	query := r.client.Collection("gigs").
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var gigs []*entity.Gig

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate seller gigs", err)
		}

		var gig entity.Gig
		if err := doc.DataTo(&gig); err != nil {
			return nil, errors.Internal("Failed to parse gig data", err)
		}
		gigs = append(gigs, &gig)
	}

	return gigs, nil
}

func (r *firestoreGigRepository) IncrementOrderCount(ctx context.Context, id string) error {
	_, err := r.client.Collection("gigs").Doc(id).Update(ctx, []firestore.Update{
		{Path: "orderCount", Value: firestore.Increment(1)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to increment gig order count", err)
	}

	return nil
}

func (r *firestoreGigRepository) RecordReview(ctx context.Context, id string, rating int) error {
	_, err := r.client.Collection("gigs").Doc(id).Update(ctx, []firestore.Update{
		{Path: "ratingSum", Value: firestore.Increment(rating)},
		{Path: "reviewCount", Value: firestore.Increment(1)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to record gig review", err)
	}

	return nil
}
