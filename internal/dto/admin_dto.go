package dto

import "time"

type AnswerCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionCreateDTO struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Points      *float64          `json:"points"`
	OrderInQuiz int               `json:"order_in_quiz"`
	Answers     []AnswerCreateDTO `json:"answers" binding:"required,dive"`
}

type QuizCreateDTO struct {
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description"`
	TimeLimitMinutes *int                `json:"timelimit"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"required,dive"`
}

type QuizCreatedDTO struct {
	Ok     bool   `json:"ok"`
	QuizID uint   `json:"quizID"`
	Title  string `json:"title"`
}

type AdminLogDTO struct {
	AdminID    uint      `json:"admin_id"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   uint      `json:"target_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
