package repository

import (
	"errors"

	"github.com/securinets-fst/securiquiz/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Exists(userID, quizID uint) (bool, error)
	FindByUserAndQuiz(userID, quizID uint) (*model.QuizResult, error)
	FindAllByUser(userID uint) ([]model.QuizResult, error)
	FindAll() ([]model.QuizResult, error)
	// CreateWithSession writes the result row and flips the session to
	// submitted as one transaction. Partial failure rolls back both writes;
	// a duplicate result surfaces as gorm.ErrDuplicatedKey.
	CreateWithSession(result *model.QuizResult, session *model.QuizSession) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Exists(userID, quizID uint) (bool, error) {
	var result model.QuizResult
	err := r.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *resultRepository) FindByUserAndQuiz(userID, quizID uint) (*model.QuizResult, error) {
	var result model.QuizResult
	if err := r.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAllByUser(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	if err := r.db.Where("user_id = ?", userID).Order("taken_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) FindAll() ([]model.QuizResult, error) {
	var results []model.QuizResult
	if err := r.db.Order("taken_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) CreateWithSession(result *model.QuizResult, session *model.QuizSession) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		return tx.Model(session).Updates(map[string]interface{}{
			"status":       session.Status,
			"score":        session.Score,
			"submitted_at": session.SubmittedAt,
		}).Error
	})
}
