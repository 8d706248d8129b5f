package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"

	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/logger"
)

// StripePaymentService implements PaymentGatewayService against Stripe
// Checkout. Orders are settled through hosted checkout pages only; the
// webhook is the single writer that creates order documents.
type StripePaymentService struct {
	webhookSecret string
	appBaseURL    string
}

func NewStripePaymentService(secretKey, webhookSecret, appBaseURL string) *StripePaymentService {
	stripe.Key = secretKey

	return &StripePaymentService{
		webhookSecret: webhookSecret,
		appBaseURL:    appBaseURL,
	}
}

func (s *StripePaymentService) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	logger.Info("Creating checkout session for gig %s tier %s amount %.2f", req.GigID, req.Tier, req.Price)

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name:        stripe.String(req.GigTitle),
		Description: stripe.String(titleCase(req.Tier) + " tier"),
	}
	if req.GigCoverImage != "" {
		productData.Images = stripe.StringSlice([]string{req.GigCoverImage})
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(string(stripe.CurrencyUSD)),
					ProductData: productData,
					UnitAmount:  stripe.Int64(int64(math.Round(req.Price * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.appBaseURL + "/dashboard/orders?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.appBaseURL + "/gig/" + req.GigID),
	}

	// Stripe metadata values are strings; numeric fields are re-parsed by
	// the webhook handler.
	params.AddMetadata("gigId", req.GigID)
	params.AddMetadata("gigTitle", req.GigTitle)
	params.AddMetadata("gigCoverImage", req.GigCoverImage)
	params.AddMetadata("sellerId", req.SellerID)
	params.AddMetadata("sellerName", req.SellerName)
	params.AddMetadata("buyerId", req.BuyerID)
	params.AddMetadata("buyerName", req.BuyerName)
	params.AddMetadata("tier", req.Tier)
	params.AddMetadata("price", strconv.FormatFloat(req.Price, 'f', -1, 64))
	params.AddMetadata("deliveryDays", strconv.Itoa(req.DeliveryDays))
	params.AddMetadata("maxRevisions", strconv.Itoa(req.MaxRevisions))
	params.AddMetadata("requirements", req.Requirements)

	sess, err := session.New(params)
	if err != nil {
		return nil, errors.Internal("Failed to create checkout session", err)
	}

	return &CheckoutSession{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

func (s *StripePaymentService) VerifyWebhook(payload []byte, signature string) (*CompletedCheckout, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return nil, errors.BadRequest("Webhook signature verification failed", err)
	}

	if event.Type != "checkout.session.completed" {
		logger.Debug("Ignoring stripe event type %s", event.Type)
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, errors.Internal("Failed to parse checkout session event", err)
	}

	completed := &CompletedCheckout{
		SessionID: sess.ID,
		Metadata:  sess.Metadata,
	}
	if sess.PaymentIntent != nil {
		completed.PaymentIntentID = sess.PaymentIntent.ID
	}

	return completed, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
