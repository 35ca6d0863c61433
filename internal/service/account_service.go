package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vedran77/levellore/internal/domain"
	"github.com/vedran77/levellore/internal/leveling"
	"github.com/vedran77/levellore/internal/session"
	"github.com/vedran77/levellore/internal/store"
	"golang.org/x/crypto/argon2"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrInvalidCreds  = errors.New("invalid username or password")
	ErrUnknownUser   = errors.New("unknown user")
)

// Argon2id parameters. Tune the time cost here if hashing needs to get
// slower; stored hashes keep verifying because the salt and digest are
// self-contained.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

type AccountService struct {
	store    store.Store
	sessions *session.Registry
}

func NewAccountService(st store.Store, sessions *session.Registry) *AccountService {
	return &AccountService{
		store:    st,
		sessions: sessions,
	}
}

// Profile is the authenticated view of an account. The raw password hash
// never leaves the service layer.
type Profile struct {
	Username      string  `json:"username"`
	XP            int     `json:"xp"`
	Level         int     `json:"level"`
	LastLoginDate *string `json:"lastLoginDate"`
	LastQuizDate  *string `json:"lastQuizDate"`
	ProfilePic    string  `json:"profilePic"`
}

// Register creates an account with zero XP, no award dates and the default
// avatar. The raw password is hashed immediately and never stored or logged.
func (s *AccountService) Register(ctx context.Context, username, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	acc := &domain.Account{
		Username:     username,
		PasswordHash: hash,
		ProfilePic:   domain.DefaultAvatar,
		CreatedAt:    time.Now(),
	}

	if err := s.store.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("creating account: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a fresh session token. The error
// is identical for an unknown username and a wrong password, so callers
// cannot probe which usernames exist.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	acc, err := s.store.GetAccount(ctx, username)
	if err != nil {
		return "", err
	}
	if acc == nil || !verifyPassword(password, acc.PasswordHash) {
		return "", ErrInvalidCreds
	}

	token, err := s.sessions.Issue(username)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout revokes the session token server-side. The token is dead from this
// point even if the client keeps a copy.
func (s *AccountService) Logout(token string) {
	s.sessions.Revoke(token)
}

// GetProfile returns the account's profile with the level derived from XP.
func (s *AccountService) GetProfile(ctx context.Context, username string) (*Profile, error) {
	acc, err := s.store.GetAccount(ctx, username)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrUnknownUser
	}
	return profileFromAccount(acc), nil
}

// UpdateAvatar replaces the account's profile picture and returns the stored
// payload.
func (s *AccountService) UpdateAvatar(ctx context.Context, username, image string) (string, error) {
	acc, err := s.store.UpdateAccount(ctx, username, func(acc *domain.Account) error {
		acc.ProfilePic = image
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return "", ErrUnknownUser
		}
		return "", fmt.Errorf("updating avatar: %w", err)
	}
	return acc.ProfilePic, nil
}

func profileFromAccount(acc *domain.Account) *Profile {
	pic := acc.ProfilePic
	if pic == "" {
		pic = domain.DefaultAvatar
	}
	return &Profile{
		Username:      acc.Username,
		XP:            acc.XP,
		Level:         leveling.Compute(acc.XP).Level,
		LastLoginDate: acc.LastLoginDate,
		LastQuizDate:  acc.LastQuizDate,
		ProfilePic:    pic,
	}
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("%s:%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func verifyPassword(password, encoded string) bool {
	saltB64, hashB64, ok := strings.Cut(encoded, ":")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(hash, expectedHash) == 1
}
