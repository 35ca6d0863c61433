package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vedran77/levellore/pkg/validator"
)

func TestPostRejectsEmptyText(t *testing.T) {
	st, _ := newTestDeps(t)
	chat := NewChatService(st)
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := chat.Post(ctx, "alice", text)
		require.ErrorIs(t, err, validator.ErrEmptyMessage)
	}

	messages, err := chat.Recent(ctx)
	require.NoError(t, err)
	require.Empty(t, messages, "rejected posts must not touch the log")
}

func TestPostTrimsAndStores(t *testing.T) {
	st, _ := newTestDeps(t)
	chat := NewChatService(st)
	chat.now = fixedClock(2026, time.August, 28)
	ctx := context.Background()

	msg, err := chat.Post(ctx, "alice", "  hello room  ")
	require.NoError(t, err)
	require.Equal(t, "hello room", msg.Text)
	require.Equal(t, "alice", msg.Username)
	require.NotEqual(t, msg.ID.String(), "00000000-0000-0000-0000-000000000000")

	messages, err := chat.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, *msg, messages[0])
}

func TestRecentOrderingAndWindow(t *testing.T) {
	st, _ := newTestDeps(t)
	chat := NewChatService(st)
	ctx := context.Background()

	// Pin the clock so every message shares a timestamp; ordering must then
	// fall back to insertion order.
	chat.now = fixedClock(2026, time.August, 28)
	for i := range 110 {
		_, err := chat.Post(ctx, "alice", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}

	messages, err := chat.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, messages, RecentWindow)
	require.Equal(t, "message 10", messages[0].Text)
	require.Equal(t, "message 109", messages[len(messages)-1].Text)
}

func TestRecentEmptyLog(t *testing.T) {
	st, _ := newTestDeps(t)
	chat := NewChatService(st)

	messages, err := chat.Recent(context.Background())
	require.NoError(t, err)
	require.NotNil(t, messages)
	require.Empty(t, messages)
}
