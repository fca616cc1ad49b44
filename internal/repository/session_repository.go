package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/securinets-fst/securiquiz/internal/model"
)

type SessionRepository interface {
	FindBySessionID(sessionID string) (*model.QuizSession, error)
	MarkExpired(session *model.QuizSession) error
	// AcquireActive runs the start sequence as one transaction: the latest
	// active session of fresh's (user, quiz) pair is locked and examined.
	// When one is still running at now and force is false it is returned
	// with resumed true and nothing is written. Otherwise every active
	// session of the pair is expired and fresh inserted. The partial unique
	// index on active (user_id, quiz_id) backstops starts that race past
	// each other's uncommitted rows; the loser surfaces
	// gorm.ErrDuplicatedKey.
	AcquireActive(fresh *model.QuizSession, now time.Time, force bool) (session *model.QuizSession, resumed bool, err error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) FindBySessionID(sessionID string) (*model.QuizSession, error) {
	var session model.QuizSession
	if err := r.db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) MarkExpired(session *model.QuizSession) error {
	session.Status = model.SessionStatusExpired
	return r.db.Model(session).Update("status", model.SessionStatusExpired).Error
}

func (r *sessionRepository) AcquireActive(fresh *model.QuizSession, now time.Time, force bool) (*model.QuizSession, bool, error) {
	var out *model.QuizSession
	resumed := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if !force {
			var existing model.QuizSession
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ? AND quiz_id = ? AND status = ?", fresh.UserID, fresh.QuizID, model.SessionStatusActive).
				Order("created_at DESC").
				First(&existing).Error
			switch {
			case err == nil && !existing.ExpiredBy(now):
				out = &existing
				resumed = true
				return nil
			case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}

		err := tx.Model(&model.QuizSession{}).
			Where("user_id = ? AND quiz_id = ? AND status = ?", fresh.UserID, fresh.QuizID, model.SessionStatusActive).
			Updates(map[string]interface{}{"status": model.SessionStatusExpired, "updated_at": now}).Error
		if err != nil {
			return err
		}
		if err := tx.Create(fresh).Error; err != nil {
			return err
		}
		out = fresh
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, resumed, nil
}
