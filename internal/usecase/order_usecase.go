package usecase

import (
	"context"
	"math"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"

	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/domain/repository"
	"orbitmarket/internal/domain/service"
	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/logger"
)

type OrderUseCase struct {
	orderRepo      repository.OrderRepository
	gigRepo        repository.GigRepository
	userRepo       repository.UserRepository
	paymentService service.PaymentGatewayService
	serviceFeeRate float64
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	gigRepo repository.GigRepository,
	userRepo repository.UserRepository,
	paymentService service.PaymentGatewayService,
	serviceFeeRate float64,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:      orderRepo,
		gigRepo:        gigRepo,
		userRepo:       userRepo,
		paymentService: paymentService,
		serviceFeeRate: serviceFeeRate,
	}
}

// OrderAction names a requested status transition.
type OrderAction string

const (
	ActionStart    OrderAction = "start"
	ActionDeliver  OrderAction = "deliver"
	ActionRevision OrderAction = "revision"
	ActionComplete OrderAction = "complete"
	ActionCancel   OrderAction = "cancel"
	ActionDispute  OrderAction = "dispute"
)

// allowedTransitions is the guarded transition table. Every status write
// goes through it inside a transaction; handlers cannot set arbitrary
// statuses.
var allowedTransitions = map[OrderAction]map[entity.OrderStatus]entity.OrderStatus{
	ActionStart: {
		entity.OrderStatusActive: entity.OrderStatusInProgress,
	},
	ActionDeliver: {
		entity.OrderStatusActive:            entity.OrderStatusDelivered,
		entity.OrderStatusInProgress:        entity.OrderStatusDelivered,
		entity.OrderStatusRevisionRequested: entity.OrderStatusDelivered,
	},
	ActionRevision: {
		entity.OrderStatusDelivered: entity.OrderStatusRevisionRequested,
	},
	ActionComplete: {
		entity.OrderStatusDelivered: entity.OrderStatusCompleted,
	},
}

func nextStatus(action OrderAction, current entity.OrderStatus) (entity.OrderStatus, error) {
	// cancel and dispute are absorbing states reachable from any
	// non-terminal status.
	if action == ActionCancel || action == ActionDispute {
		if current.Terminal() {
			return "", errors.Conflict("Order is already closed", nil)
		}
		if action == ActionCancel {
			return entity.OrderStatusCancelled, nil
		}
		return entity.OrderStatusDisputed, nil
	}

	targets, ok := allowedTransitions[action]
	if !ok {
		return "", errors.BadRequest("Unknown order action", nil)
	}
	next, ok := targets[current]
	if !ok {
		return "", errors.Conflict("Order cannot be "+string(action)+"d from status "+string(current), nil)
	}
	return next, nil
}

func (uc *OrderUseCase) GetByID(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Participant(userID) {
		return nil, errors.Forbidden("You are not a participant of this order", nil)
	}
	return order, nil
}

func (uc *OrderUseCase) ListByUser(ctx context.Context, userID, role string, limit, offset int) ([]*entity.Order, int64, error) {
	switch role {
	case "buyer", "seller":
	default:
		return nil, 0, errors.BadRequest("Role must be \"buyer\" or \"seller\"", nil)
	}
	return uc.orderRepo.ListByUser(ctx, userID, role == "seller", limit, offset)
}

// Start marks the order as in progress once the seller picks it up.
func (uc *OrderUseCase) Start(ctx context.Context, sellerID, orderID string) (*entity.Order, error) {
	return uc.orderRepo.Transition(ctx, orderID, func(current *entity.Order) (map[string]interface{}, error) {
		if current.SellerID != sellerID {
			return nil, errors.Forbidden("Only the seller can start the order", nil)
		}
		next, err := nextStatus(ActionStart, current.Status)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"status": string(next),
		}, nil
	})
}

type DeliverInput struct {
	Deliverables []entity.Deliverable
}

// Deliver moves the order to delivered with the seller's deliverables.
func (uc *OrderUseCase) Deliver(ctx context.Context, sellerID, orderID string, input DeliverInput) (*entity.Order, error) {
	if len(input.Deliverables) == 0 {
		return nil, errors.BadRequest("Missing or invalid deliverables array", nil)
	}

	now := time.Now()
	for i := range input.Deliverables {
		input.Deliverables[i].UploadedAt = now
	}

	return uc.orderRepo.Transition(ctx, orderID, func(current *entity.Order) (map[string]interface{}, error) {
		if current.SellerID != sellerID {
			return nil, errors.Forbidden("Only the seller can deliver", nil)
		}
		next, err := nextStatus(ActionDeliver, current.Status)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"status":       string(next),
			"deliverables": append(current.Deliverables, input.Deliverables...),
		}, nil
	})
}

// RequestRevision bounds revisions in the write path: the UI check alone
// would let direct API calls exceed the purchased revision count.
func (uc *OrderUseCase) RequestRevision(ctx context.Context, buyerID, orderID, message string) (*entity.Order, error) {
	if message == "" {
		return nil, errors.BadRequest("Missing or invalid message", nil)
	}

	return uc.orderRepo.Transition(ctx, orderID, func(current *entity.Order) (map[string]interface{}, error) {
		if current.BuyerID != buyerID {
			return nil, errors.Forbidden("Only the buyer can request a revision", nil)
		}
		if _, err := nextStatus(ActionRevision, current.Status); err != nil {
			return nil, err
		}
		if current.RevisionCount >= current.MaxRevisions {
			return nil, errors.Conflict("No revisions remaining on this order", nil)
		}
		return map[string]interface{}{
			"status":          string(entity.OrderStatusRevisionRequested),
			"revisionCount":   firestore.Increment(1),
			"revisionMessage": message,
		}, nil
	})
}

// Complete marks the order completed and settles the seller aggregates.
// Completing an already-completed order is an idempotent no-op.
func (uc *OrderUseCase) Complete(ctx context.Context, buyerID, orderID string) (*entity.Order, error) {
	var settled bool

	order, err := uc.orderRepo.Transition(ctx, orderID, func(current *entity.Order) (map[string]interface{}, error) {
		if current.BuyerID != buyerID {
			return nil, errors.Forbidden("Only the buyer can complete the order", nil)
		}
		if current.Status == entity.OrderStatusCompleted {
			return nil, nil
		}
		next, err := nextStatus(ActionComplete, current.Status)
		if err != nil {
			return nil, err
		}
		settled = true
		return map[string]interface{}{
			"status":      string(next),
			"completedAt": time.Now(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if settled {
		// Counter updates are atomic per document but not transactional
		// with the status write; a failure here only skews denormalized
		// aggregates.
		if err := uc.userRepo.RecordCompletedOrder(ctx, order.SellerID, order.Price); err != nil {
			logger.Warn("Failed to update seller aggregates for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

func (uc *OrderUseCase) Cancel(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	return uc.closeOrder(ctx, userID, orderID, ActionCancel)
}

func (uc *OrderUseCase) Dispute(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	return uc.closeOrder(ctx, userID, orderID, ActionDispute)
}

func (uc *OrderUseCase) closeOrder(ctx context.Context, userID, orderID string, action OrderAction) (*entity.Order, error) {
	return uc.orderRepo.Transition(ctx, orderID, func(current *entity.Order) (map[string]interface{}, error) {
		if !current.Participant(userID) {
			return nil, errors.Forbidden("You are not a participant of this order", nil)
		}
		next, err := nextStatus(action, current.Status)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"status": string(next),
		}, nil
	})
}

type CheckoutInput struct {
	GigID        string
	Tier         string
	Requirements string
}

// Checkout builds a hosted checkout session for one gig tier. Pricing is
// re-read from the gig document rather than trusted from the client.
func (uc *OrderUseCase) Checkout(ctx context.Context, buyerID string, input CheckoutInput) (*service.CheckoutSession, error) {
	if uc.paymentService == nil {
		return nil, errors.ServiceUnavailable("Checkout is currently unavailable", nil)
	}

	gig, err := uc.gigRepo.GetByID(ctx, input.GigID)
	if err != nil {
		return nil, err
	}
	if gig.Status != entity.GigStatusActive {
		return nil, errors.BadRequest("Gig is not available for purchase", nil)
	}
	if gig.SellerID == buyerID {
		return nil, errors.BadRequest("You cannot purchase your own gig", nil)
	}

	tier := entity.PricingTier(input.Tier)
	pricing, ok := gig.Pricing[tier]
	if !ok {
		return nil, errors.BadRequest("Unknown pricing tier", nil)
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	return uc.paymentService.CreateCheckoutSession(ctx, service.CheckoutRequest{
		GigID:         gig.ID,
		GigTitle:      gig.Title,
		GigCoverImage: gig.CoverImage,
		SellerID:      gig.SellerID,
		SellerName:    gig.SellerName,
		BuyerID:       buyer.ID,
		BuyerName:     buyer.DisplayName,
		Tier:          string(tier),
		Price:         pricing.Price,
		DeliveryDays:  pricing.DeliveryDays,
		MaxRevisions:  pricing.Revisions,
		Requirements:  input.Requirements,
	})
}

// HandleCheckoutCompleted creates the order from a verified
// checkout.session.completed event. Duplicate deliveries for the same
// session are acknowledged without creating a second order.
func (uc *OrderUseCase) HandleCheckoutCompleted(ctx context.Context, checkout *service.CompletedCheckout) (*entity.Order, error) {
	existing, err := uc.orderRepo.GetByStripeSessionID(ctx, checkout.SessionID)
	if err == nil {
		logger.Info("Duplicate webhook delivery for session %s, order %s already exists", checkout.SessionID, existing.ID)
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	md := checkout.Metadata
	price, err := strconv.ParseFloat(md["price"], 64)
	if err != nil {
		return nil, errors.BadRequest("Invalid price in session metadata", err)
	}
	deliveryDays, err := strconv.Atoi(md["deliveryDays"])
	if err != nil {
		return nil, errors.BadRequest("Invalid deliveryDays in session metadata", err)
	}
	maxRevisions, err := strconv.Atoi(md["maxRevisions"])
	if err != nil {
		return nil, errors.BadRequest("Invalid maxRevisions in session metadata", err)
	}

	serviceFee := roundCents(price * uc.serviceFeeRate)
	totalAmount := roundCents(price + serviceFee)
	deliveryDeadline := time.Now().AddDate(0, 0, deliveryDays)

	order := &entity.Order{
		GigID:                 md["gigId"],
		GigTitle:              md["gigTitle"],
		GigCoverImage:         md["gigCoverImage"],
		SellerID:              md["sellerId"],
		SellerName:            md["sellerName"],
		BuyerID:               md["buyerId"],
		BuyerName:             md["buyerName"],
		Tier:                  entity.PricingTier(md["tier"]),
		Price:                 price,
		ServiceFee:            serviceFee,
		TotalAmount:           totalAmount,
		DeliveryDays:          deliveryDays,
		DeliveryDeadline:      deliveryDeadline,
		Status:                entity.OrderStatusActive,
		Requirements:          md["requirements"],
		Deliverables:          []entity.Deliverable{},
		RevisionCount:         0,
		MaxRevisions:          maxRevisions,
		StripeSessionID:       checkout.SessionID,
		StripePaymentIntentID: checkout.PaymentIntentID,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.gigRepo.IncrementOrderCount(ctx, order.GigID); err != nil {
		logger.Warn("Failed to increment order count for gig %s: %v", order.GigID, err)
	}

	logger.Info("Created order %s from checkout session %s", order.ID, checkout.SessionID)
	return order, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
