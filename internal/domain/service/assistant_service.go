package service

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/logger"
)

// historyWindow bounds how much of the conversation is forwarded upstream.
const historyWindow = 20

type AssistantMessage struct {
	Role string `json:"role"` // user or model
	Text string `json:"text"`
}

// AssistantService streams chat completions from a hosted LLM with a fixed
// system prompt. Conversations are not persisted and there is no token
// accounting; the client owns the history.
type AssistantService struct {
	apiKey       string
	model        string
	systemPrompt string
}

func NewAssistantService(apiKey, model, systemPrompt string) *AssistantService {
	return &AssistantService{
		apiKey:       apiKey,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

func (s *AssistantService) Enabled() bool {
	return s.apiKey != ""
}

// StreamChat forwards the trailing window of messages (all but the last as
// history, the last as the new user turn) and calls onDelta for every text
// chunk. Cancelling ctx stops the stream.
func (s *AssistantService) StreamChat(ctx context.Context, messages []AssistantMessage, onDelta func(chunk string) error) error {
	if !s.Enabled() {
		return errors.ServiceUnavailable("Chat is currently unavailable", nil)
	}
	if len(messages) == 0 {
		return errors.BadRequest("At least one message is required", nil)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return errors.Internal("Failed to create assistant client", err)
	}
	defer client.Close()

	recent := messages
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	model := client.GenerativeModel(s.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(s.systemPrompt)},
	}

	chat := model.StartChat()
	for _, m := range recent[:len(recent)-1] {
		role := m.Role
		if role != "user" && role != "model" {
			role = "user"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}

	last := recent[len(recent)-1]
	iter := chat.SendMessageStream(ctx, genai.Text(last.Text))

	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				// Client went away mid-stream; nothing to recover.
				return nil
			}
			logger.Error("Assistant stream error: %v", err)
			return errors.Internal("Assistant stream failed", err)
		}

		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				text, ok := part.(genai.Text)
				if !ok || text == "" {
					continue
				}
				if err := onDelta(string(text)); err != nil {
					return err
				}
			}
		}
	}
}
