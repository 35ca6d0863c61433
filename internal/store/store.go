// Package store defines the persistence boundary for accounts and the chat
// log, so the backend (JSON snapshot file, Postgres) is swappable without
// touching business logic.
package store

import (
	"context"
	"errors"

	"github.com/vedran77/levellore/internal/domain"
)

var (
	// ErrAccountExists is returned when creating an account whose username
	// is already taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound is returned when updating an account that does not
	// exist.
	ErrAccountNotFound = errors.New("account not found")
)

// Store is the durable mapping of username to account plus the append-only
// chat log. Every implementation must serialize mutations: two concurrent
// UpdateAccount calls on the same account observe each other's writes, and
// concurrent AppendMessage calls all survive.
type Store interface {
	// CreateAccount stores a new account, failing with ErrAccountExists if
	// the username is taken.
	CreateAccount(ctx context.Context, acc *domain.Account) error

	// GetAccount returns the account for username, or (nil, nil) if absent.
	GetAccount(ctx context.Context, username string) (*domain.Account, error)

	// UpdateAccount applies fn to the account under the store's write lock
	// and persists the result as one atomic read-modify-persist step. If fn
	// returns an error nothing is persisted. Returns the updated account.
	UpdateAccount(ctx context.Context, username string, fn func(*domain.Account) error) (*domain.Account, error)

	// ListAccounts returns all accounts in unspecified order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// AppendMessage adds msg to the end of the chat log.
	AppendMessage(ctx context.Context, msg *domain.ChatMessage) error

	// RecentMessages returns at most limit messages from the tail of the
	// log, oldest first. Ties in timestamp keep insertion order.
	RecentMessages(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}
