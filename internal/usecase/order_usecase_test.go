package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/domain/service"
	"orbitmarket/pkg/errors"
)

func testOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:           "order-1",
		GigID:        "gig-1",
		SellerID:     "seller-1",
		BuyerID:      "buyer-1",
		Status:       status,
		Price:        100,
		MaxRevisions: 2,
	}
}

func newTestOrderUseCase(orderRepo *fakeOrderRepo, gigRepo *fakeGigRepo, userRepo *fakeUserRepo, payment service.PaymentGatewayService) *OrderUseCase {
	if gigRepo == nil {
		gigRepo = newFakeGigRepo()
	}
	if userRepo == nil {
		userRepo = newFakeUserRepo()
	}
	return NewOrderUseCase(orderRepo, gigRepo, userRepo, payment, 0.10)
}

func TestStartFromActive(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusActive))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	order, err := uc.Start(context.Background(), "seller-1", "order-1")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)
}

func TestStartRequiresSeller(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusActive))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.Start(context.Background(), "buyer-1", "order-1")

	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestStartFromDeliveredConflicts(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusDelivered))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.Start(context.Background(), "seller-1", "order-1")

	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestDeliverFromActive(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusActive))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	order, err := uc.Deliver(context.Background(), "seller-1", "order-1", DeliverInput{
		Deliverables: []entity.Deliverable{{URL: "https://files.example.com/final.zip", Name: "final.zip"}},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
	require.Len(t, order.Deliverables, 1)
	assert.False(t, order.Deliverables[0].UploadedAt.IsZero())
}

func TestDeliverRequiresSeller(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusActive))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.Deliver(context.Background(), "buyer-1", "order-1", DeliverInput{
		Deliverables: []entity.Deliverable{{URL: "https://files.example.com/final.zip", Name: "final.zip"}},
	})

	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestDeliverWithoutDeliverables(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusActive))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.Deliver(context.Background(), "seller-1", "order-1", DeliverInput{})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestDeliverFromCompletedConflicts(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusCompleted))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.Deliver(context.Background(), "seller-1", "order-1", DeliverInput{
		Deliverables: []entity.Deliverable{{URL: "https://files.example.com/final.zip", Name: "final.zip"}},
	})

	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestRequestRevisionIncrementsCounter(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusDelivered))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	order, err := uc.RequestRevision(context.Background(), "buyer-1", "order-1", "The logo colors are off")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRevisionRequested, order.Status)
	assert.Equal(t, 1, order.RevisionCount)
	assert.Equal(t, "The logo colors are off", order.RevisionMessage)
}

func TestRequestRevisionRequiresMessage(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusDelivered))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.RequestRevision(context.Background(), "buyer-1", "order-1", "")

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRequestRevisionExhausted(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	order.RevisionCount = 2
	repo := newFakeOrderRepo(order)
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.RequestRevision(context.Background(), "buyer-1", "order-1", "One more pass please")

	assert.True(t, errors.Is(err, "CONFLICT"))
	assert.Equal(t, 2, repo.orders["order-1"].RevisionCount)
}

func TestRequestRevisionBuyerOnly(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusDelivered))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.RequestRevision(context.Background(), "seller-1", "order-1", "Change it")

	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCompleteSettlesSeller(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusDelivered))
	userRepo := newFakeUserRepo()
	uc := newTestOrderUseCase(repo, nil, userRepo, nil)

	order, err := uc.Complete(context.Background(), "buyer-1", "order-1")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, 1, userRepo.completedOrders)
}

func TestCompleteIsIdempotent(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusDelivered))
	userRepo := newFakeUserRepo()
	uc := newTestOrderUseCase(repo, nil, userRepo, nil)

	_, err := uc.Complete(context.Background(), "buyer-1", "order-1")
	require.NoError(t, err)

	order, err := uc.Complete(context.Background(), "buyer-1", "order-1")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	// The seller aggregate is only settled once.
	assert.Equal(t, 1, userRepo.completedOrders)
}

func TestCompleteFromPendingPaymentConflicts(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusPendingPayment))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.Complete(context.Background(), "buyer-1", "order-1")

	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestCancelFromTerminalConflicts(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusCancelled))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.Cancel(context.Background(), "buyer-1", "order-1")

	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestDisputeFromDelivered(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusDelivered))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	order, err := uc.Dispute(context.Background(), "seller-1", "order-1")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDisputed, order.Status)
}

func TestGetByIDRequiresParticipant(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(entity.OrderStatusActive))
	uc := newTestOrderUseCase(repo, nil, nil, nil)

	_, err := uc.GetByID(context.Background(), "someone-else", "order-1")

	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func activeGig() *entity.Gig {
	return &entity.Gig{
		ID:       "gig-1",
		SellerID: "seller-1",
		Title:    "I will build your landing page",
		Status:   entity.GigStatusActive,
		Pricing: map[entity.PricingTier]entity.TierPricing{
			entity.TierBasic: {Price: 100, DeliveryDays: 7, Revisions: 2},
		},
	}
}

func TestCheckoutUsesServerSidePricing(t *testing.T) {
	gigRepo := newFakeGigRepo(activeGig())
	userRepo := newFakeUserRepo(&entity.User{ID: "buyer-1", DisplayName: "Dana"})
	payment := &fakePaymentService{}
	uc := newTestOrderUseCase(newFakeOrderRepo(), gigRepo, userRepo, payment)

	session, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{
		GigID: "gig-1",
		Tier:  "basic",
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.SessionID)
	assert.Equal(t, 100.0, payment.lastRequest.Price)
	assert.Equal(t, 7, payment.lastRequest.DeliveryDays)
	assert.Equal(t, 2, payment.lastRequest.MaxRevisions)
	assert.Equal(t, "Dana", payment.lastRequest.BuyerName)
}

func TestCheckoutRejectsOwnGig(t *testing.T) {
	gigRepo := newFakeGigRepo(activeGig())
	userRepo := newFakeUserRepo(&entity.User{ID: "seller-1"})
	uc := newTestOrderUseCase(newFakeOrderRepo(), gigRepo, userRepo, &fakePaymentService{})

	_, err := uc.Checkout(context.Background(), "seller-1", CheckoutInput{GigID: "gig-1", Tier: "basic"})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCheckoutRejectsInactiveGig(t *testing.T) {
	gig := activeGig()
	gig.Status = entity.GigStatusDraft
	uc := newTestOrderUseCase(newFakeOrderRepo(), newFakeGigRepo(gig), newFakeUserRepo(), &fakePaymentService{})

	_, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{GigID: "gig-1", Tier: "basic"})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCheckoutWithoutPaymentService(t *testing.T) {
	uc := newTestOrderUseCase(newFakeOrderRepo(), nil, nil, nil)

	_, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{GigID: "gig-1", Tier: "basic"})

	assert.True(t, errors.Is(err, "SERVICE_UNAVAILABLE"))
}

func completedCheckout() *service.CompletedCheckout {
	return &service.CompletedCheckout{
		SessionID:       "cs_test_42",
		PaymentIntentID: "pi_test_42",
		Metadata: map[string]string{
			"gigId":        "gig-1",
			"gigTitle":     "I will build your landing page",
			"sellerId":     "seller-1",
			"sellerName":   "Sam",
			"buyerId":      "buyer-1",
			"buyerName":    "Dana",
			"tier":         "basic",
			"price":        "100",
			"deliveryDays": "7",
			"maxRevisions": "2",
			"requirements": "Dark theme please",
		},
	}
}

func TestHandleCheckoutCompletedCreatesOrder(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	gigRepo := newFakeGigRepo(activeGig())
	uc := newTestOrderUseCase(orderRepo, gigRepo, nil, nil)

	before := time.Now()
	order, err := uc.HandleCheckoutCompleted(context.Background(), completedCheckout())

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusActive, order.Status)
	assert.Equal(t, 100.0, order.Price)
	assert.Equal(t, 10.0, order.ServiceFee)
	assert.Equal(t, 110.0, order.TotalAmount)
	assert.Equal(t, 2, order.MaxRevisions)
	assert.Equal(t, "cs_test_42", order.StripeSessionID)

	expectedDeadline := before.AddDate(0, 0, 7)
	assert.WithinDuration(t, expectedDeadline, order.DeliveryDeadline, time.Minute)

	assert.Equal(t, 1, gigRepo.orderCountBumps)
}

func TestHandleCheckoutCompletedRoundsFee(t *testing.T) {
	checkout := completedCheckout()
	checkout.Metadata["price"] = "33.33"
	uc := newTestOrderUseCase(newFakeOrderRepo(), newFakeGigRepo(activeGig()), nil, nil)

	order, err := uc.HandleCheckoutCompleted(context.Background(), checkout)

	require.NoError(t, err)
	assert.Equal(t, 3.33, order.ServiceFee)
	assert.Equal(t, 36.66, order.TotalAmount)
}

func TestHandleCheckoutCompletedIsIdempotent(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	gigRepo := newFakeGigRepo(activeGig())
	uc := newTestOrderUseCase(orderRepo, gigRepo, nil, nil)

	first, err := uc.HandleCheckoutCompleted(context.Background(), completedCheckout())
	require.NoError(t, err)

	second, err := uc.HandleCheckoutCompleted(context.Background(), completedCheckout())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, orderRepo.orders, 1)
	assert.Equal(t, 1, gigRepo.orderCountBumps)
}

func TestHandleCheckoutCompletedBadMetadata(t *testing.T) {
	checkout := completedCheckout()
	checkout.Metadata["price"] = "not-a-number"
	uc := newTestOrderUseCase(newFakeOrderRepo(), newFakeGigRepo(activeGig()), nil, nil)

	_, err := uc.HandleCheckoutCompleted(context.Background(), checkout)

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
