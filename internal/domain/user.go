package domain

import "time"

// DefaultAvatar is an embedded coloured square served when a user has not
// uploaded a profile picture, so the client never depends on static image
// assets being deployed.
const DefaultAvatar = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAADIAAAAyCAIAAACRXR/mAAAAT0lEQVR4nO3OMQHAIADAMJh/A3hCFAb29IIjUZA51h7v+W4H/mkVWoVWoVVoFVqFVqFVaBVahVahVWgVWoVWoVVoFVqFVqFVaBVahVahVRz/7AHJNzgsxgAAAABJRU5ErkJggg=="

// Account is a registered user. Username is the immutable key. XP only ever
// grows; level is never stored, it is derived from XP on every read.
type Account struct {
	Username      string
	PasswordHash  string
	XP            int
	LastLoginDate *string
	LastQuizDate  *string
	ProfilePic    string
	CreatedAt     time.Time
}
