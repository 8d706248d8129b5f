package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPendingPayment    OrderStatus = "pending_payment"
	OrderStatusActive            OrderStatus = "active"
	OrderStatusInProgress        OrderStatus = "in_progress"
	OrderStatusDelivered         OrderStatus = "delivered"
	OrderStatusRevisionRequested OrderStatus = "revision_requested"
	OrderStatusCompleted         OrderStatus = "completed"
	OrderStatusCancelled         OrderStatus = "cancelled"
	OrderStatusDisputed          OrderStatus = "disputed"
)

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled || s == OrderStatusDisputed
}

type Deliverable struct {
	URL        string    `json:"url" firestore:"url"`
	Name       string    `json:"name" firestore:"name"`
	UploadedAt time.Time `json:"uploaded_at" firestore:"uploadedAt"`
}

type Order struct {
	ID string `json:"id" firestore:"id"`

	// Gig and participant fields are snapshotted at purchase time and not
	// kept in sync with later gig edits.
	GigID         string `json:"gig_id" firestore:"gigId"`
	GigTitle      string `json:"gig_title" firestore:"gigTitle"`
	GigCoverImage string `json:"gig_cover_image,omitempty" firestore:"gigCoverImage,omitempty"`
	SellerID      string `json:"seller_id" firestore:"sellerId"`
	SellerName    string `json:"seller_name" firestore:"sellerName"`
	BuyerID       string `json:"buyer_id" firestore:"buyerId"`
	BuyerName     string `json:"buyer_name" firestore:"buyerName"`

	Tier        PricingTier `json:"tier" firestore:"tier"`
	Price       float64     `json:"price" firestore:"price"`
	ServiceFee  float64     `json:"service_fee" firestore:"serviceFee"`
	TotalAmount float64     `json:"total_amount" firestore:"totalAmount"`

	DeliveryDays     int       `json:"delivery_days" firestore:"deliveryDays"`
	DeliveryDeadline time.Time `json:"delivery_deadline" firestore:"deliveryDeadline"`

	Status       OrderStatus   `json:"status" firestore:"status"`
	Requirements string        `json:"requirements,omitempty" firestore:"requirements,omitempty"`
	Deliverables []Deliverable `json:"deliverables" firestore:"deliverables"`

	RevisionCount   int    `json:"revision_count" firestore:"revisionCount"`
	MaxRevisions    int    `json:"max_revisions" firestore:"maxRevisions"`
	RevisionMessage string `json:"revision_message,omitempty" firestore:"revisionMessage,omitempty"`

	StripeSessionID       string `json:"-" firestore:"stripeSessionId"`
	StripePaymentIntentID string `json:"-" firestore:"stripePaymentIntentId,omitempty"`

	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
	CompletedAt *time.Time `json:"completed_at,omitempty" firestore:"completedAt,omitempty"`
}

// Participant reports whether uid is the buyer or the seller on the order.
func (o *Order) Participant(uid string) bool {
	return o.BuyerID == uid || o.SellerID == uid
}
