package entity

import (
	"time"
)

type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleSeller UserRole = "seller"
	RoleBoth   UserRole = "both"
)

type Language struct {
	Language string `json:"language" firestore:"language"`
	Level    string `json:"level" firestore:"level"`
}

type SellerProfile struct {
	Tagline      string     `json:"tagline" firestore:"tagline"`
	Bio          string     `json:"bio" firestore:"bio"`
	Skills       []string   `json:"skills" firestore:"skills"`
	Languages    []Language `json:"languages" firestore:"languages"`
	HourlyRate   float64    `json:"hourly_rate" firestore:"hourlyRate"`
	ResponseTime string     `json:"response_time,omitempty" firestore:"responseTime,omitempty"`
	Level        string     `json:"level" firestore:"level"` // new, level-1, level-2, top-rated

	TotalEarnings   float64 `json:"total_earnings" firestore:"totalEarnings"`
	CompletedOrders int     `json:"completed_orders" firestore:"completedOrders"`

	// Rating kept as sum+count so increments stay single-field atomic.
	RatingSum   float64 `json:"-" firestore:"ratingSum"`
	ReviewCount int     `json:"review_count" firestore:"reviewCount"`

	PortfolioURLs []string `json:"portfolio_urls,omitempty" firestore:"portfolioUrls,omitempty"`
	Github        string   `json:"github,omitempty" firestore:"github,omitempty"`
	Linkedin      string   `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
	Fiverr        string   `json:"fiverr,omitempty" firestore:"fiverr,omitempty"`

	Available   bool      `json:"available" firestore:"available"`
	Country     string    `json:"country,omitempty" firestore:"country,omitempty"`
	MemberSince time.Time `json:"member_since" firestore:"memberSince"`
}

// Rating returns the average rating rounded to two decimals.
func (p *SellerProfile) Rating() float64 {
	if p.ReviewCount == 0 {
		return 0
	}
	return roundCents(p.RatingSum / float64(p.ReviewCount))
}

type User struct {
	ID          string   `json:"id" firestore:"id"`
	Email       string   `json:"email" firestore:"email"`
	DisplayName string   `json:"display_name" firestore:"displayName"`
	PhotoURL    string   `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	Role        UserRole `json:"role" firestore:"role"`

	SellerProfile *SellerProfile `json:"seller_profile,omitempty" firestore:"sellerProfile,omitempty"`

	StripeCustomerID string `json:"-" firestore:"stripeCustomerId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsSeller() bool {
	return u.Role == RoleSeller || u.Role == RoleBoth
}
