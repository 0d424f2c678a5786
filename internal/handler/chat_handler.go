package handler

import (
	"net/http"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// ChatHandler handles shopping assistant requests.
type ChatHandler struct {
	logger zerolog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		logger: logger.With().Str("handler", "chat").Logger(),
	}
}

// chatHistory is the conversation returned by GET /api/chat.
type chatHistory struct {
	Messages        []model.ChatMessage `json:"messages"`
	Recommendations []model.Product     `json:"recommendations"`
	IsTyping        bool                `json:"isTyping"`
}

// History handles GET /api/chat.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, chatHistory{
		Messages:        s.Chat.History(),
		Recommendations: s.Chat.Recommendations(),
		IsTyping:        s.Chat.IsTyping(),
	})
}

// Send handles POST /api/chat.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidJSON, "invalid JSON payload", h.logger)
		return
	}

	reply, err := s.Chat.Send(r.Context(), req.Message)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, reply)
}
