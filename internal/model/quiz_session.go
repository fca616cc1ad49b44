package model

import (
	"time"
)

const (
	SessionStatusActive    = "active"
	SessionStatusExpired   = "expired"
	SessionStatusSubmitted = "submitted"
)

// QuizSession is one server-tracked, time-bounded attempt by one user at one
// quiz. At most one active session may exist per (user, quiz) — the partial
// unique index on (user_id, quiz_id) where status = 'active' enforces this
// against racing starts. A forced restart is the only writer allowed to
// expire an active session ahead of its wall-clock expiry. No soft delete:
// expired/submitted sessions are terminal history.
type QuizSession struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	SessionID   string     `json:"session_id" gorm:"not null;uniqueIndex"` // opaque uuid handed to clients
	UserID      uint       `json:"user_id" gorm:"not null;index:idx_sessions_user_quiz;index:idx_active_user_quiz,unique,where:status = 'active'"`
	QuizID      uint       `json:"quiz_id" gorm:"not null;index:idx_sessions_user_quiz;index:idx_active_user_quiz,unique,where:status = 'active'"`
	StartAt     time.Time  `json:"start_at" gorm:"not null"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"` // nil: quiz has no time limit
	Status      string     `json:"status" gorm:"not null;default:'active'"`
	Score       *float64   `json:"score,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ExpiredBy reports whether the session's deadline has passed at the given
// instant. Sessions without a deadline never expire by time.
func (s *QuizSession) ExpiredBy(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}
