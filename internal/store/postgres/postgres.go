// Package postgres implements store.Store on a Postgres database. Schema
// lives in migrations/. Row locks give the same read-modify-persist
// atomicity the file backend gets from its writer mutex.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/levellore/internal/domain"
	"github.com/vedran77/levellore/internal/store"
)

const uniqueViolation = "23505"

type Store struct {
	pool *pgxpool.Pool
}

var _ store.Store = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) CreateAccount(ctx context.Context, acc *domain.Account) error {
	query := `
		INSERT INTO accounts (username, password_hash, xp, last_login_date, last_quiz_date, profile_pic, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.pool.Exec(ctx, query,
		acc.Username, acc.PasswordHash, acc.XP,
		acc.LastLoginDate, acc.LastQuizDate, acc.ProfilePic, acc.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return store.ErrAccountExists
	}
	return err
}

func (s *Store) GetAccount(ctx context.Context, username string) (*domain.Account, error) {
	return s.scanAccount(ctx, s.pool, username, false)
}

func (s *Store) UpdateAccount(ctx context.Context, username string, fn func(*domain.Account) error) (*domain.Account, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	acc, err := s.scanAccount(ctx, tx, username, true)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, store.ErrAccountNotFound
	}

	if err := fn(acc); err != nil {
		return nil, err
	}
	if acc.XP < 0 {
		return nil, fmt.Errorf("refusing to store negative xp for %s", username)
	}

	query := `
		UPDATE accounts
		SET password_hash = $2, xp = $3, last_login_date = $4, last_quiz_date = $5, profile_pic = $6
		WHERE username = $1`

	if _, err := tx.Exec(ctx, query,
		acc.Username, acc.PasswordHash, acc.XP,
		acc.LastLoginDate, acc.LastQuizDate, acc.ProfilePic,
	); err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing account update: %w", err)
	}
	return acc, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT username, password_hash, xp, last_login_date, last_quiz_date, profile_pic, created_at
		FROM accounts`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		if err := rows.Scan(
			&acc.Username, &acc.PasswordHash, &acc.XP,
			&acc.LastLoginDate, &acc.LastQuizDate, &acc.ProfilePic, &acc.CreatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

func (s *Store) AppendMessage(ctx context.Context, msg *domain.ChatMessage) error {
	query := `
		INSERT INTO messages (id, username, text, ts)
		VALUES ($1, $2, $3, $4)`

	_, err := s.pool.Exec(ctx, query, msg.ID, msg.Username, msg.Text, msg.Timestamp)
	return err
}

func (s *Store) RecentMessages(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	// seq is the insertion order; the inner query takes the newest rows,
	// the outer one flips them back to oldest-first.
	query := `
		SELECT id, username, text, ts FROM (
			SELECT seq, id, username, text, ts
			FROM messages
			ORDER BY seq DESC
			LIMIT $1
		) tail
		ORDER BY seq ASC`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.ChatMessage{}
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.Username, &msg.Text, &msg.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (s *Store) scanAccount(ctx context.Context, q queryer, username string, forUpdate bool) (*domain.Account, error) {
	query := `
		SELECT username, password_hash, xp, last_login_date, last_quiz_date, profile_pic, created_at
		FROM accounts WHERE username = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var acc domain.Account
	err := q.QueryRow(ctx, query, username).Scan(
		&acc.Username, &acc.PasswordHash, &acc.XP,
		&acc.LastLoginDate, &acc.LastQuizDate, &acc.ProfilePic, &acc.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
