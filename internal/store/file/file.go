// Package file implements store.Store on a single JSON snapshot file. The
// in-memory copy is authoritative; every mutation rewrites the whole file
// under a single writer lock. Fine at this scale, a known liability at a
// larger one.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vedran77/levellore/internal/domain"
	"github.com/vedran77/levellore/internal/store"
)

// snapshot is the on-disk layout: {"users": {...}, "messages": [...]}.
type snapshot struct {
	Users    map[string]accountRecord `json:"users"`
	Messages []domain.ChatMessage     `json:"messages"`
}

type accountRecord struct {
	Password      string    `json:"password"`
	XP            int       `json:"xp"`
	LastLoginDate *string   `json:"lastLoginDate"`
	LastQuizDate  *string   `json:"lastQuizDate"`
	ProfilePic    string    `json:"profilePic"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Store struct {
	mu       sync.RWMutex
	path     string
	users    map[string]accountRecord
	messages []domain.ChatMessage
}

var _ store.Store = (*Store)(nil)

// Open loads the snapshot at path, or starts empty if the file does not
// exist yet. The file is created on the first mutation.
func Open(path string) (*Store, error) {
	s := &Store{
		path:  path,
		users: make(map[string]accountRecord),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("parsing data file %s: %w", path, err)
	}
	if snap.Users != nil {
		s.users = snap.Users
	}
	s.messages = snap.Messages

	return s, nil
}

func (s *Store) CreateAccount(ctx context.Context, acc *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[acc.Username]; ok {
		return store.ErrAccountExists
	}

	s.users[acc.Username] = recordFromAccount(acc)
	if err := s.persistLocked(); err != nil {
		delete(s.users, acc.Username)
		return err
	}
	return nil
}

func (s *Store) GetAccount(ctx context.Context, username string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	acc := rec.toAccount(username)
	return &acc, nil
}

func (s *Store) UpdateAccount(ctx context.Context, username string, fn func(*domain.Account) error) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[username]
	if !ok {
		return nil, store.ErrAccountNotFound
	}

	acc := rec.toAccount(username)
	if err := fn(&acc); err != nil {
		return nil, err
	}
	if acc.XP < 0 {
		return nil, fmt.Errorf("refusing to store negative xp for %s", username)
	}

	s.users[username] = recordFromAccount(&acc)
	if err := s.persistLocked(); err != nil {
		s.users[username] = rec
		return nil, err
	}
	return &acc, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(s.users))
	for username, rec := range s.users {
		accounts = append(accounts, rec.toAccount(username))
	}
	return accounts, nil
}

func (s *Store) AppendMessage(ctx context.Context, msg *domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, *msg)
	if err := s.persistLocked(); err != nil {
		s.messages = s.messages[:len(s.messages)-1]
		return err
	}
	return nil
}

func (s *Store) RecentMessages(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if limit > 0 && len(s.messages) > limit {
		start = len(s.messages) - limit
	}

	out := make([]domain.ChatMessage, len(s.messages)-start)
	copy(out, s.messages[start:])
	return out, nil
}

// persistLocked rewrites the snapshot file. Callers hold the write lock.
// Writes go to a temp file first and replace the snapshot with a rename, so
// a crash mid-write never leaves a truncated file behind.
func (s *Store) persistLocked() error {
	snap := snapshot{Users: s.users, Messages: s.messages}
	if snap.Messages == nil {
		snap.Messages = []domain.ChatMessage{}
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

func recordFromAccount(acc *domain.Account) accountRecord {
	return accountRecord{
		Password:      acc.PasswordHash,
		XP:            acc.XP,
		LastLoginDate: acc.LastLoginDate,
		LastQuizDate:  acc.LastQuizDate,
		ProfilePic:    acc.ProfilePic,
		CreatedAt:     acc.CreatedAt,
	}
}

func (r accountRecord) toAccount(username string) domain.Account {
	return domain.Account{
		Username:      username,
		PasswordHash:  r.Password,
		XP:            r.XP,
		LastLoginDate: r.LastLoginDate,
		LastQuizDate:  r.LastQuizDate,
		ProfilePic:    r.ProfilePic,
		CreatedAt:     r.CreatedAt,
	}
}
