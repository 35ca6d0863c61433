package file

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/levellore/internal/domain"
	"github.com/vedran77/levellore/internal/store"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func testAccount(username string) *domain.Account {
	return &domain.Account{
		Username:     username,
		PasswordHash: "salt:hash",
		ProfilePic:   domain.DefaultAvatar,
		CreatedAt:    time.Now(),
	}
}

func TestCreateAndGetAccount(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, testAccount("alice")))

	acc, err := s.GetAccount(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, acc)
	require.Equal(t, "alice", acc.Username)
	require.Equal(t, 0, acc.XP)
	require.Nil(t, acc.LastLoginDate)

	missing, err := s.GetAccount(ctx, "bob")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestCreateAccountDuplicate(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, testAccount("alice")))
	err := s.CreateAccount(ctx, testAccount("alice"))
	require.ErrorIs(t, err, store.ErrAccountExists)
}

func TestUpdateAccount(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, testAccount("alice")))

	updated, err := s.UpdateAccount(ctx, "alice", func(acc *domain.Account) error {
		acc.XP += 50
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 50, updated.XP)

	acc, err := s.GetAccount(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 50, acc.XP)
}

func TestUpdateAccountNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.UpdateAccount(context.Background(), "ghost", func(acc *domain.Account) error {
		return nil
	})
	require.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestUpdateAccountRejectsNegativeXP(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, testAccount("alice")))

	_, err := s.UpdateAccount(ctx, "alice", func(acc *domain.Account) error {
		acc.XP = -1
		return nil
	})
	require.Error(t, err)

	acc, err := s.GetAccount(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 0, acc.XP, "failed update must not leak into the store")
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, testAccount("alice")))
	_, err := s.UpdateAccount(ctx, "alice", func(acc *domain.Account) error {
		acc.XP = 250
		date := "2026-08-28"
		acc.LastLoginDate = &date
		return nil
	})
	require.NoError(t, err)

	msg := &domain.ChatMessage{ID: uuid.New(), Username: "alice", Text: "hi", Timestamp: 1234}
	require.NoError(t, s.AppendMessage(ctx, msg))

	// Reopen from disk.
	reloaded, err := Open(path)
	require.NoError(t, err)

	acc, err := reloaded.GetAccount(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, acc)
	require.Equal(t, 250, acc.XP)
	require.NotNil(t, acc.LastLoginDate)
	require.Equal(t, "2026-08-28", *acc.LastLoginDate)
	require.Equal(t, "salt:hash", acc.PasswordHash)

	messages, err := reloaded.RecentMessages(ctx, 100)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, *msg, messages[0])
}

func TestRecentMessagesWindow(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for i := range 150 {
		msg := &domain.ChatMessage{
			ID:        uuid.New(),
			Username:  "alice",
			Text:      "msg",
			Timestamp: int64(i),
		}
		require.NoError(t, s.AppendMessage(ctx, msg))
	}

	messages, err := s.RecentMessages(ctx, 100)
	require.NoError(t, err)
	require.Len(t, messages, 100)
	require.Equal(t, int64(50), messages[0].Timestamp, "window keeps the newest messages")
	require.Equal(t, int64(149), messages[99].Timestamp)

	for i := 1; i < len(messages); i++ {
		require.LessOrEqual(t, messages[i-1].Timestamp, messages[i].Timestamp)
	}
}

func TestPersistFailureDoesNotMutateMemory(t *testing.T) {
	// A path whose parent directory does not exist makes every snapshot
	// write fail.
	s, err := Open(filepath.Join(t.TempDir(), "missing", "data.json"))
	require.NoError(t, err)
	ctx := context.Background()

	err = s.CreateAccount(ctx, testAccount("alice"))
	require.Error(t, err)

	acc, gerr := s.GetAccount(ctx, "alice")
	require.NoError(t, gerr)
	require.Nil(t, acc, "account must not exist after a failed persist")

	err = s.AppendMessage(ctx, &domain.ChatMessage{ID: uuid.New(), Username: "a", Text: "x"})
	require.Error(t, err)

	messages, merr := s.RecentMessages(ctx, 100)
	require.NoError(t, merr)
	require.Empty(t, messages)
}
