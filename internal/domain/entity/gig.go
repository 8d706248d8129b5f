package entity

import (
	"math"
	"time"
)

type GigStatus string

const (
	GigStatusDraft  GigStatus = "draft"
	GigStatusActive GigStatus = "active"
	GigStatusPaused GigStatus = "paused"
)

type PricingTier string

const (
	TierBasic    PricingTier = "basic"
	TierStandard PricingTier = "standard"
	TierPremium  PricingTier = "premium"
)

type TierPricing struct {
	Title        string   `json:"title" firestore:"title"`
	Description  string   `json:"description" firestore:"description"`
	Price        float64  `json:"price" firestore:"price"`
	DeliveryDays int      `json:"delivery_days" firestore:"deliveryDays"`
	Revisions    int      `json:"revisions" firestore:"revisions"`
	Features     []string `json:"features" firestore:"features"`
}

type FAQ struct {
	Question string `json:"question" firestore:"question"`
	Answer   string `json:"answer" firestore:"answer"`
}

type Gig struct {
	ID          string `json:"id" firestore:"id"`
	SellerID    string `json:"seller_id" firestore:"sellerId"`
	SellerName  string `json:"seller_name" firestore:"sellerName"`
	SellerPhoto string `json:"seller_photo,omitempty" firestore:"sellerPhoto,omitempty"`

	Title       string   `json:"title" firestore:"title"`
	Slug        string   `json:"slug" firestore:"slug"`
	Description string   `json:"description" firestore:"description"`
	Category    string   `json:"category" firestore:"category"` // ai, web, mobile, design, marketing, other
	Subcategory string   `json:"subcategory" firestore:"subcategory"`
	Tags        []string `json:"tags" firestore:"tags"`
	Images      []string `json:"images,omitempty" firestore:"images,omitempty"`
	CoverImage  string   `json:"cover_image,omitempty" firestore:"coverImage,omitempty"`

	Pricing map[PricingTier]TierPricing `json:"pricing" firestore:"pricing"`
	FAQ     []FAQ                       `json:"faq,omitempty" firestore:"faq,omitempty"`

	Status GigStatus `json:"status" firestore:"status"`

	// Denormalized counters, maintained with atomic increments from
	// order/review writes.
	RatingSum   float64 `json:"-" firestore:"ratingSum"`
	ReviewCount int     `json:"review_count" firestore:"reviewCount"`
	OrderCount  int     `json:"order_count" firestore:"orderCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Rating returns the average rating rounded to two decimals.
func (g *Gig) Rating() float64 {
	if g.ReviewCount == 0 {
		return 0
	}
	return roundCents(g.RatingSum / float64(g.ReviewCount))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
