package session

import "context"

// State tags which question the user was last asked. Exactly one state is
// live per user, so free-text input is only ever matched against a single
// handler.
type State int

const (
	StateIdle State = iota
	StateChoosingService
	StateChoosingDay
	StateChoosingTime
	StateAdmin
)

// Session is the transient per-user selection context. Last write wins;
// entries expire after the configured TTL.
type Session struct {
	State   State  `json:"state"`
	Service string `json:"service,omitempty"`
	Date    string `json:"date,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Store keeps sessions keyed by user identity. Get returns (nil, nil)
// when there is no live session.
type Store interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Put(ctx context.Context, userID int64, s *Session) error
	Delete(ctx context.Context, userID int64) error
}
