package model

import (
	"time"
)

// QuizResult is the single authoritative outcome per (user, quiz). The
// composite unique index is the backstop against duplicate concurrent
// submissions: the loser of a race fails on the constraint instead of
// producing a second row.
type QuizResult struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_results_user_quiz"`
	QuizID    uint      `json:"quiz_id" gorm:"not null;uniqueIndex:idx_results_user_quiz"`
	Score     float64   `json:"score" gorm:"not null"`
	Passed    bool      `json:"passed" gorm:"not null"`
	TakenAt   time.Time `json:"taken_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
