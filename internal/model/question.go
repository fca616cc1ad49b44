package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID          uint           `gorm:"primarykey" json:"questionID"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Points      *float64       `json:"points,omitempty"` // nil counts as 0
	OrderInQuiz int            `json:"order_in_quiz" gorm:"not null"`
	Answers     []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// PointValue treats missing points as zero.
func (q *Question) PointValue() float64 {
	if q.Points == nil {
		return 0
	}
	return *q.Points
}
