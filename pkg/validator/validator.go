package validator

import (
	"errors"
	"strings"
)

const (
	maxUsernameLen = 50
	maxMessageLen  = 2000
)

var (
	ErrMissingCredentials = errors.New("Username and password are required.")
	ErrUsernameTooLong    = errors.New("Username is too long.")
	ErrEmptyMessage       = errors.New("Message cannot be empty.")
	ErrMessageTooLong     = errors.New("Message is too long.")
	ErrMissingImage       = errors.New("Image data is required.")
	ErrInvalidImage       = errors.New("Image must be a data URI.")
)

// ValidateCredentials checks a register/login payload. Usernames are
// case-sensitive and otherwise unrestricted beyond being non-empty.
func ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrMissingCredentials
	}
	if len(username) > maxUsernameLen {
		return ErrUsernameTooLong
	}
	return nil
}

// ValidateChatText checks a chat message body and returns the trimmed text.
func ValidateChatText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}
	if len(text) > maxMessageLen {
		return "", ErrMessageTooLong
	}
	return text, nil
}

// ValidateAvatar checks an uploaded avatar payload.
func ValidateAvatar(image string) error {
	if image == "" {
		return ErrMissingImage
	}
	if !strings.HasPrefix(image, "data:image/") {
		return ErrInvalidImage
	}
	return nil
}
