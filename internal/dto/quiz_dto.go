package dto

import "time"

// AnswerOptionDTO is an answer choice as shown to a taker. The correctness
// flag deliberately has no representation here.
type AnswerOptionDTO struct {
	AnswerID uint   `json:"answerID"`
	Text     string `json:"text"`
}

type QuestionDTO struct {
	QuestionID  uint              `json:"questionID"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Points      float64           `json:"points"`
	OrderInQuiz int               `json:"order_in_quiz"`
	Answers     []AnswerOptionDTO `json:"answers"`
}

type QuizDetailDTO struct {
	QuizID           uint          `json:"quizID"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	TimeLimitMinutes *int          `json:"timelimit,omitempty"`
	Questions        []QuestionDTO `json:"questions"`
}

type QuizSummaryDTO struct {
	QuizID           uint      `json:"quizID"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	TimeLimitMinutes *int      `json:"timelimit,omitempty"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// ResultDTO is a finished attempt as seen by its owner or an admin; pass/fail
// is visible here, unlike in the submit response.
type ResultDTO struct {
	UserID  uint      `json:"user_id"`
	QuizID  uint      `json:"quizID"`
	Score   float64   `json:"score"`
	Passed  bool      `json:"passed"`
	TakenAt time.Time `json:"taken_at"`
}
