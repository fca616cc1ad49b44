package repository

import (
	"github.com/securinets-fst/securiquiz/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionAnswerRepository interface {
	// Upsert inserts or overwrites the selection keyed by
	// (session_id, question_id). A nil AnswerID clears the selection.
	Upsert(answer *model.SessionAnswer) error
	FindBySession(sessionID string) ([]model.SessionAnswer, error)
}

type sessionAnswerRepository struct {
	db *gorm.DB
}

func NewSessionAnswerRepository(db *gorm.DB) SessionAnswerRepository {
	return &sessionAnswerRepository{db: db}
}

func (r *sessionAnswerRepository) Upsert(answer *model.SessionAnswer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer_id", "updated_at"}),
	}).Create(answer).Error
}

func (r *sessionAnswerRepository) FindBySession(sessionID string) ([]model.SessionAnswer, error) {
	var answers []model.SessionAnswer
	if err := r.db.Where("session_id = ?", sessionID).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
