package handler

import (
	"net/http"
	"strings"

	"orbitmarket/internal/domain/service"
	"orbitmarket/pkg/errors"
	"orbitmarket/pkg/logger"
	"orbitmarket/pkg/response"

	"github.com/labstack/echo/v4"
)

type AssistantHandler struct {
	assistantService *service.AssistantService
}

func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

type assistantPartRequest struct {
	Text string `json:"text" validate:"required,min=1,max=4000"`
}

// assistantMessageRequest mirrors the Gemini content shape the frontend
// already speaks: each message carries one or more text parts.
type assistantMessageRequest struct {
	Role  string                 `json:"role" validate:"required,oneof=user model"`
	Parts []assistantPartRequest `json:"parts" validate:"required,min=1,max=10,dive"`
}

func (m assistantMessageRequest) text() string {
	var b strings.Builder
	for _, part := range m.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}

type assistantChatRequest struct {
	Messages []assistantMessageRequest `json:"messages" validate:"required,min=1,max=50,dive"`
}

// Chat proxies the conversation to the model and streams the reply back as
// chunked plain text. The client renders chunks as they arrive.
func (h *AssistantHandler) Chat(c echo.Context) error {
	var req assistantChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if req.Messages[len(req.Messages)-1].Role != "user" {
		return response.Error(c, errors.BadRequest("Last message must be from the user", nil))
	}

	if h.assistantService == nil || !h.assistantService.Enabled() {
		return response.Error(c, errors.ServiceUnavailable("Assistant is currently unavailable", nil))
	}

	messages := make([]service.AssistantMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = service.AssistantMessage{Role: m.Role, Text: m.text()}
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/plain; charset=utf-8")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().WriteHeader(http.StatusOK)

	streamed := false
	err := h.assistantService.StreamChat(c.Request().Context(), messages, func(chunk string) error {
		if _, err := c.Response().Write([]byte(chunk)); err != nil {
			return err
		}
		c.Response().Flush()
		streamed = true
		return nil
	})
	if err != nil {
		// Headers are already sent once streaming started; the client sees
		// a truncated body instead of an error envelope.
		if !streamed {
			logger.Error("Assistant stream failed before first chunk: %v", err)
		} else {
			logger.Warn("Assistant stream interrupted: %v", err)
		}
	}

	return nil
}
