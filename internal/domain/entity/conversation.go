package entity

import (
	"time"
)

type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeFile   MessageType = "file"
	MessageTypeSystem MessageType = "system"
)

// Conversation is a 1:1 thread between two users. Participant names and
// photos are denormalized so conversation lists render without extra reads.
type Conversation struct {
	ID                string            `json:"id" firestore:"id"`
	Participants      []string          `json:"participants" firestore:"participants"`
	ParticipantNames  map[string]string `json:"participant_names" firestore:"participantNames"`
	ParticipantPhotos map[string]string `json:"participant_photos,omitempty" firestore:"participantPhotos,omitempty"`

	LastMessage   string    `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`
	LastMessageBy string    `json:"last_message_by,omitempty" firestore:"lastMessageBy,omitempty"`

	UnreadCount map[string]int `json:"unread_count" firestore:"unreadCount"`

	RelatedGigID   string `json:"related_gig_id,omitempty" firestore:"relatedGigId,omitempty"`
	RelatedOrderID string `json:"related_order_id,omitempty" firestore:"relatedOrderId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// HasParticipant reports whether uid belongs to the conversation.
func (c *Conversation) HasParticipant(uid string) bool {
	for _, p := range c.Participants {
		if p == uid {
			return true
		}
	}
	return false
}

// OtherParticipant returns the counterpart of uid in a 1:1 conversation.
func (c *Conversation) OtherParticipant(uid string) string {
	for _, p := range c.Participants {
		if p != uid {
			return p
		}
	}
	return ""
}

type Message struct {
	ID             string `json:"id" firestore:"id"`
	ConversationID string `json:"conversation_id" firestore:"conversationId"`
	SenderID       string `json:"sender_id" firestore:"senderId"`
	SenderName     string `json:"sender_name" firestore:"senderName"`

	Content string      `json:"content" firestore:"content"`
	Type    MessageType `json:"type" firestore:"type"`

	FileURL  string `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	FileName string `json:"file_name,omitempty" firestore:"fileName,omitempty"`

	Read bool `json:"read" firestore:"read"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
