package models

import (
	"time"
)

// Session is the view of an authenticated session the application exposes.
// The token itself stays opaque to callers; pages only need to know that a
// session is present and who it belongs to.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionEvent is pushed to subscribers whenever a session is opened or
// closed (sign-in / sign-out).
type SessionEvent struct {
	SignedIn bool   `json:"signed_in"`
	Email    string `json:"email,omitempty"`
}
