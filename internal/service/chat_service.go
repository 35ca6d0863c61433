package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/levellore/internal/domain"
	"github.com/vedran77/levellore/internal/store"
	"github.com/vedran77/levellore/pkg/validator"
)

// RecentWindow caps how many messages a read returns. The log itself grows
// without bound.
const RecentWindow = 100

type ChatService struct {
	store store.Store
	now   func() time.Time
}

func NewChatService(st store.Store) *ChatService {
	return &ChatService{
		store: st,
		now:   time.Now,
	}
}

// Post appends a message to the shared room and returns it as stored. The
// text is trimmed; an empty result is rejected before anything is written.
func (s *ChatService) Post(ctx context.Context, username, text string) (*domain.ChatMessage, error) {
	text, err := validator.ValidateChatText(text)
	if err != nil {
		return nil, err
	}

	msg := &domain.ChatMessage{
		ID:        uuid.New(),
		Username:  username,
		Text:      text,
		Timestamp: s.now().UnixMilli(),
	}

	if err := s.store.AppendMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("appending message: %w", err)
	}
	return msg, nil
}

// Recent returns the newest messages, oldest first.
func (s *ChatService) Recent(ctx context.Context) ([]domain.ChatMessage, error) {
	messages, err := s.store.RecentMessages(ctx, RecentWindow)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	return messages, nil
}
