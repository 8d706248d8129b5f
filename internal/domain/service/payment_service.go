package service

import (
	"context"
)

// CheckoutRequest carries everything needed to build a hosted checkout page
// for one gig tier. All fields end up in the session metadata as strings so
// the webhook can reconstruct the order without a database read.
type CheckoutRequest struct {
	GigID         string
	GigTitle      string
	GigCoverImage string
	SellerID      string
	SellerName    string
	BuyerID       string
	BuyerName     string
	Tier          string
	Price         float64
	DeliveryDays  int
	MaxRevisions  int
	Requirements  string
}

type CheckoutSession struct {
	SessionID string
	URL       string
}

// CompletedCheckout is the payload extracted from a verified
// checkout.session.completed event.
type CompletedCheckout struct {
	SessionID       string
	PaymentIntentID string
	Metadata        map[string]string
}

// PaymentGatewayService abstracts the hosted payments provider.
type PaymentGatewayService interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)

	// VerifyWebhook checks the provider signature and returns the completed
	// checkout if the event is a checkout.session.completed; (nil, nil) for
	// event types we don't handle.
	VerifyWebhook(payload []byte, signature string) (*CompletedCheckout, error)
}
