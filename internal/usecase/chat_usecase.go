package usecase

import (
	"context"
	"encoding/json"

	"orbitmarket/internal/domain/entity"
	"orbitmarket/internal/domain/repository"
	"orbitmarket/internal/infrastructure/websocket"
	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/logger"
)

type ChatUseCase struct {
	conversationRepo repository.ConversationRepository
	userRepo         repository.UserRepository
	wsManager        *websocket.Manager
}

func NewChatUseCase(
	conversationRepo repository.ConversationRepository,
	userRepo repository.UserRepository,
	wsManager *websocket.Manager,
) *ChatUseCase {
	return &ChatUseCase{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		wsManager:        wsManager,
	}
}

type StartConversationInput struct {
	RecipientID    string `json:"recipient_id" validate:"required"`
	RelatedGigID   string `json:"related_gig_id,omitempty"`
	RelatedOrderID string `json:"related_order_id,omitempty"`
}

// StartConversation returns the existing 1:1 thread between the two users,
// creating one on first contact.
func (uc *ChatUseCase) StartConversation(ctx context.Context, userID string, input StartConversationInput) (*entity.Conversation, error) {
	if input.RecipientID == userID {
		return nil, errors.BadRequest("You cannot start a conversation with yourself", nil)
	}

	existing, err := uc.conversationRepo.GetByParticipants(ctx, userID, input.RecipientID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	sender, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	recipient, err := uc.userRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}

	conversation := &entity.Conversation{
		Participants: []string{userID, input.RecipientID},
		ParticipantNames: map[string]string{
			userID:            sender.DisplayName,
			input.RecipientID: recipient.DisplayName,
		},
		ParticipantPhotos: map[string]string{
			userID:            sender.PhotoURL,
			input.RecipientID: recipient.PhotoURL,
		},
		UnreadCount: map[string]int{
			userID:            0,
			input.RecipientID: 0,
		},
		RelatedGigID:   input.RelatedGigID,
		RelatedOrderID: input.RelatedOrderID,
	}

	if err := uc.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, err
	}

	return conversation, nil
}

// ConversationListItem decorates a thread with the counterpart's live
// connection state so the inbox can show presence.
type ConversationListItem struct {
	*entity.Conversation
	CounterpartOnline bool `json:"counterpartOnline"`
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, userID string, limit, offset int) ([]ConversationListItem, int64, error) {
	conversations, total, err := uc.conversationRepo.ListByParticipant(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	items := make([]ConversationListItem, len(conversations))
	for i, conversation := range conversations {
		online := false
		if uc.wsManager != nil {
			online = uc.wsManager.IsOnline(conversation.OtherParticipant(userID))
		}
		items[i] = ConversationListItem{
			Conversation:      conversation,
			CounterpartOnline: online,
		}
	}

	return items, total, nil
}

func (uc *ChatUseCase) GetConversation(ctx context.Context, userID, conversationID string) (*entity.Conversation, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.Forbidden("You are not a participant of this conversation", nil)
	}
	return conversation, nil
}

type SendMessageInput struct {
	Content  string `json:"content" validate:"required,min=1,max=5000"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=text file"`
	FileURL  string `json:"file_url,omitempty" validate:"omitempty,url"`
	FileName string `json:"file_name,omitempty"`
}

// wsEvent is the push payload fanned out to connected recipients.
type wsEvent struct {
	Event   string          `json:"event"`
	Payload *entity.Message `json:"payload"`
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, userID, conversationID string, input SendMessageInput) (*entity.Message, error) {
	conversation, err := uc.GetConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	msgType := entity.MessageType(input.Type)
	if msgType == "" {
		msgType = entity.MessageTypeText
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		SenderName:     conversation.ParticipantNames[userID],
		Content:        input.Content,
		Type:           msgType,
		FileURL:        input.FileURL,
		FileName:       input.FileName,
	}

	if err := uc.conversationRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	recipientID := conversation.OtherParticipant(userID)
	if err := uc.conversationRepo.RecordMessage(ctx, conversationID, message, recipientID); err != nil {
		logger.Warn("Failed to update conversation preview for %s: %v", conversationID, err)
	}

	// Best-effort realtime push; offline recipients catch up from the
	// unread counter on their next list.
	if uc.wsManager != nil {
		if payload, err := json.Marshal(wsEvent{Event: "message", Payload: message}); err == nil {
			uc.wsManager.SendToUser(recipientID, payload)
		}
	}

	return message, nil
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, userID, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	if _, err := uc.GetConversation(ctx, userID, conversationID); err != nil {
		return nil, 0, err
	}
	return uc.conversationRepo.ListMessages(ctx, conversationID, limit, offset)
}

// MarkRead zeroes the caller's unread counter on the conversation.
func (uc *ChatUseCase) MarkRead(ctx context.Context, userID, conversationID string) error {
	if _, err := uc.GetConversation(ctx, userID, conversationID); err != nil {
		return err
	}
	return uc.conversationRepo.MarkRead(ctx, conversationID, userID)
}
