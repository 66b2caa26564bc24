package models

import (
	"time"
)

const (
	SessionAnonymous      = "anonymous"
	SessionAuthenticating = "authenticating"
	SessionAuthenticated  = "authenticated"
	SessionError          = "error"
)

// Session is a point-in-time snapshot of the session state machine.
type Session struct {
	State           string      `json:"state"` // anonymous, authenticating, authenticated, error
	CurrentUser     *PublicUser `json:"current_user,omitempty"`
	IsAuthenticated bool        `json:"is_authenticated"`
	IsLoading       bool        `json:"is_loading"`
	Error           string      `json:"error,omitempty"`
}

// SessionRecord is the opaque record persisted under a fixed storage key.
// A missing or unreadable record means "no session".
type SessionRecord struct {
	UserID  string    `json:"user_id"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}
