package usecase

import (
	"context"
	"strconv"
	"time"

	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/domain/repository"
	"orbitmarket/internal/domain/service"
	"orbitmarket/pkg/errors"
)

type fakeUserRepo struct {
	users map[string]*entity.User

	completedOrders int
	recordedRatings []int
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (r *fakeUserRepo) RecordCompletedOrder(ctx context.Context, sellerID string, earnings float64) error {
	r.completedOrders++
	return nil
}

func (r *fakeUserRepo) RecordReview(ctx context.Context, sellerID string, rating int) error {
	r.recordedRatings = append(r.recordedRatings, rating)
	return nil
}

type fakeGigRepo struct {
	gigs map[string]*entity.Gig

	orderCountBumps int
	recordedRatings []int
}

func newFakeGigRepo(gigs ...*entity.Gig) *fakeGigRepo {
	r := &fakeGigRepo{gigs: make(map[string]*entity.Gig)}
	for _, g := range gigs {
		r.gigs[g.ID] = g
	}
	return r
}

func (r *fakeGigRepo) Create(ctx context.Context, gig *entity.Gig) error {
	if gig.ID == "" {
		gig.ID = "gig-" + strconv.Itoa(len(r.gigs)+1)
	}
	r.gigs[gig.ID] = gig
	return nil
}

func (r *fakeGigRepo) GetByID(ctx context.Context, id string) (*entity.Gig, error) {
	gig, ok := r.gigs[id]
	if !ok {
		return nil, errors.NotFound("Gig", nil)
	}
	return gig, nil
}

func (r *fakeGigRepo) GetBySlug(ctx context.Context, slug string) (*entity.Gig, error) {
	for _, gig := range r.gigs {
		if gig.Slug == slug {
			return gig, nil
		}
	}
	return nil, errors.NotFound("Gig", nil)
}

func (r *fakeGigRepo) Update(ctx context.Context, gig *entity.Gig) error {
	r.gigs[gig.ID] = gig
	return nil
}

func (r *fakeGigRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (r *fakeGigRepo) Delete(ctx context.Context, id string) error {
	delete(r.gigs, id)
	return nil
}

func (r *fakeGigRepo) ListActive(ctx context.Context, filter repository.GigFilter, limit, offset int) ([]*entity.Gig, int64, error) {
	var gigs []*entity.Gig
	for _, gig := range r.gigs {
		if gig.Status != entity.GigStatusActive {
			continue
		}
		if filter.Category != "" && gig.Category != filter.Category {
			continue
		}
		gigs = append(gigs, gig)
	}
	return gigs, int64(len(gigs)), nil
}

func (r *fakeGigRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Gig, error) {
	var gigs []*entity.Gig
	for _, gig := range r.gigs {
		if gig.SellerID == sellerID {
			gigs = append(gigs, gig)
		}
	}
	return gigs, nil
}

func (r *fakeGigRepo) IncrementOrderCount(ctx context.Context, id string) error {
	r.orderCountBumps++
	if gig, ok := r.gigs[id]; ok {
		gig.OrderCount++
	}
	return nil
}

func (r *fakeGigRepo) RecordReview(ctx context.Context, id string, rating int) error {
	r.recordedRatings = append(r.recordedRatings, rating)
	if gig, ok := r.gigs[id]; ok {
		gig.RatingSum += float64(rating)
		gig.ReviewCount++
	}
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[string]*entity.Order)}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = "order-" + strconv.Itoa(len(r.orders)+1)
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *fakeOrderRepo) GetByStripeSessionID(ctx context.Context, sessionID string) (*entity.Order, error) {
	for _, order := range r.orders {
		if order.StripeSessionID == sessionID {
			return order, nil
		}
	}
	return nil, errors.NotFound("Order for checkout session", nil)
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID string, asSeller bool, limit, offset int) ([]*entity.Order, int64, error) {
	var orders []*entity.Order
	for _, order := range r.orders {
		if asSeller && order.SellerID == userID {
			orders = append(orders, order)
		}
		if !asSeller && order.BuyerID == userID {
			orders = append(orders, order)
		}
	}
	return orders, int64(len(orders)), nil
}

// Transition mirrors the Firestore implementation's field application so
// usecase tests exercise the same write semantics.
func (r *fakeOrderRepo) Transition(ctx context.Context, id string, fn func(current *entity.Order) (map[string]interface{}, error)) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}

	snapshot := *order
	fields, err := fn(&snapshot)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return order, nil
	}

	order.UpdatedAt = time.Now()
	for path, value := range fields {
		switch path {
		case "status":
			order.Status = entity.OrderStatus(value.(string))
		case "deliverables":
			order.Deliverables = value.([]entity.Deliverable)
		case "revisionCount":
			// Written as firestore.Increment(1) by the caller.
			order.RevisionCount++
		case "revisionMessage":
			order.RevisionMessage = value.(string)
		case "completedAt":
			t := value.(time.Time)
			order.CompletedAt = &t
		}
	}
	return order, nil
}

type fakeReviewRepo struct {
	reviews map[string]*entity.Review
}

func newFakeReviewRepo(reviews ...*entity.Review) *fakeReviewRepo {
	r := &fakeReviewRepo{reviews: make(map[string]*entity.Review)}
	for _, rev := range reviews {
		r.reviews[rev.ID] = rev
	}
	return r
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = "review-" + strconv.Itoa(len(r.reviews)+1)
	}
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return review, nil
}

func (r *fakeReviewRepo) GetByOrderID(ctx context.Context, orderID string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.OrderID == orderID {
			return review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Review, int64, error) {
	var reviews []*entity.Review
	for _, review := range r.reviews {
		if review.SellerID == sellerID {
			reviews = append(reviews, review)
		}
	}
	return reviews, int64(len(reviews)), nil
}

func (r *fakeReviewRepo) ListByGig(ctx context.Context, gigID string, limit, offset int) ([]*entity.Review, int64, error) {
	var reviews []*entity.Review
	for _, review := range r.reviews {
		if review.GigID == gigID {
			reviews = append(reviews, review)
		}
	}
	return reviews, int64(len(reviews)), nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	r.reviews[review.ID] = review
	return nil
}

type fakePaymentService struct {
	lastRequest service.CheckoutRequest
	session     *service.CheckoutSession
}

func (s *fakePaymentService) CreateCheckoutSession(ctx context.Context, req service.CheckoutRequest) (*service.CheckoutSession, error) {
	s.lastRequest = req
	if s.session != nil {
		return s.session, nil
	}
	return &service.CheckoutSession{SessionID: "cs_test_1", URL: "https://checkout.stripe.test/cs_test_1"}, nil
}

func (s *fakePaymentService) VerifyWebhook(payload []byte, signature string) (*service.CompletedCheckout, error) {
	return nil, errors.Unauthorized("Invalid signature", nil)
}
