package entity

import (
	"time"
)

type Review struct {
	ID       string `json:"id" firestore:"id"`
	OrderID  string `json:"order_id" firestore:"orderId"`
	GigID    string `json:"gig_id" firestore:"gigId"`
	SellerID string `json:"seller_id" firestore:"sellerId"`
	BuyerID  string `json:"buyer_id" firestore:"buyerId"`

	BuyerName  string `json:"buyer_name" firestore:"buyerName"`
	BuyerPhoto string `json:"buyer_photo,omitempty" firestore:"buyerPhoto,omitempty"`

	Rating  int    `json:"rating" firestore:"rating"`
	Comment string `json:"comment" firestore:"comment"`

	SellerResponse string `json:"seller_response,omitempty" firestore:"sellerResponse,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
