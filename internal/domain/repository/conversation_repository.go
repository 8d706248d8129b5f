package repository

import (
	"context"
	"orbitmarket/internal/domain/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	GetByParticipants(ctx context.Context, userA, userB string) (*entity.Conversation, error)
	ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error)

	// RecordMessage updates the conversation preview fields and bumps the
	// recipient's unread counter atomically.
	RecordMessage(ctx context.Context, conversationID string, message *entity.Message, recipientID string) error
	MarkRead(ctx context.Context, conversationID, userID string) error

	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error)
}
