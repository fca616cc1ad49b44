package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID               uint           `gorm:"primarykey" json:"quizID"`
	Title            string         `json:"title" gorm:"not null;uniqueIndex"`
	Description      string         `json:"description,omitempty"`
	TimeLimitMinutes *int           `json:"timelimit,omitempty"` // nil: no time limit
	Questions        []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
