package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vedran77/levellore/internal/service"
	"github.com/vedran77/levellore/internal/transport/http/middleware"
	"github.com/vedran77/levellore/pkg/validator"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatInput struct {
	Text string `json:"text"`
}

func (h *ChatHandler) Post(w http.ResponseWriter, r *http.Request) {
	var input chatInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	username := middleware.GetUsername(r.Context())
	msg, err := h.chatService.Post(r.Context(), username, input.Text)
	if err != nil {
		if errors.Is(err, validator.ErrEmptyMessage) || errors.Is(err, validator.ErrMessageTooLong) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeServerError(w, "post message", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Sent", "data": msg})
}

func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatService.Recent(r.Context())
	if err != nil {
		writeServerError(w, "list messages", err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
