package dto

import "time"

type StartSessionRequest struct {
	Force bool `json:"force"`
}

// SessionStartDTO is the start/resume response. The (start, expires,
// server_now) epoch-millisecond triple is a hard contract: clients compute
// remaining time from it while compensating for clock skew.
type SessionStartDTO struct {
	Ok          bool          `json:"ok"`
	SessionID   string        `json:"session_id"`
	StartAt     time.Time     `json:"start_at"`
	StartAtMs   int64         `json:"start_at_ms"`
	ExpiresAt   *time.Time    `json:"expires_at,omitempty"`
	ExpiresAtMs *int64        `json:"expires_at_ms,omitempty"`
	ServerNowMs int64         `json:"server_now_ms"`
	Quiz        QuizDetailDTO `json:"quiz"`
}

type SaveAnswerRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	QuestionID uint   `json:"questionID" binding:"required"`
	AnswerID   *uint  `json:"answerID"` // null clears the selection
}

type SubmittedAnswerDTO struct {
	QuestionID uint  `json:"questionID" binding:"required"`
	AnswerID   *uint `json:"answerID"`
}

type SubmitRequest struct {
	SessionID string               `json:"session_id" binding:"required"`
	Answers   []SubmittedAnswerDTO `json:"answers" binding:"required,dive"`
}

type QuestionResultDTO struct {
	QuestionID       uint    `json:"questionID"`
	SelectedAnswerID *uint   `json:"selected_answerID,omitempty"`
	Correct          bool    `json:"correct"`
	Points           float64 `json:"points"`
}

// SubmitResultDTO reports the graded submission. Pass/fail is computed and
// stored but intentionally absent from this response; it is exposed only
// through result queries.
type SubmitResultDTO struct {
	Ok     bool                `json:"ok"`
	Score  float64             `json:"score"`
	Total  float64             `json:"total"`
	Detail []QuestionResultDTO `json:"detail"`
}
