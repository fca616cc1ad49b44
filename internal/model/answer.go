package model

import (
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID         uint           `gorm:"primarykey" json:"answerID"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Text       string         `json:"text" gorm:"type:text;not null"`
	IsCorrect  bool           `json:"-" gorm:"not null;default:false"` // never serialized to takers
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
