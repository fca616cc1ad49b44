package model

import (
	"time"
)

// SessionAnswer is the per-session, per-question selection of a taker. Saving
// again for the same question overwrites the prior selection; no history is
// kept.
type SessionAnswer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SessionID  string    `json:"session_id" gorm:"not null;uniqueIndex:idx_session_question"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	QuizID     uint      `json:"quiz_id" gorm:"not null"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_session_question"`
	AnswerID   *uint     `json:"answer_id,omitempty"` // nil: selection cleared
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
