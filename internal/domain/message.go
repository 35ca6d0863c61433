package domain

import "github.com/google/uuid"

// ChatMessage is one entry in the shared room's append-only log. Messages are
// immutable once created. Timestamp is wall-clock milliseconds; it is not
// guaranteed unique, insertion order breaks ties.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Timestamp int64     `json:"timestamp"`
}
