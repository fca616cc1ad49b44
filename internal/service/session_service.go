package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/securinets-fst/securiquiz/internal/apperror"
	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/model"
	"github.com/securinets-fst/securiquiz/internal/repository"
)

// SessionService orchestrates the timed quiz-session lifecycle:
// start/resume/forced restart, answer saves and graded submission. It only
// ever consumes an already-authenticated (user, quiz) pair; token handling
// lives in the auth layer.
type SessionService interface {
	Start(userID, quizID uint, force bool) (*dto.SessionStartDTO, error)
	SaveAnswer(userID, quizID uint, req dto.SaveAnswerRequest) error
	Submit(userID, quizID uint, req dto.SubmitRequest) (*dto.SubmitResultDTO, error)
}

type sessionService struct {
	quizRepo    repository.QuizRepository
	sessionRepo repository.SessionRepository
	answerRepo  repository.SessionAnswerRepository
	resultRepo  repository.ResultRepository
	clock       Clock
}

func NewSessionService(
	quizRepo repository.QuizRepository,
	sessionRepo repository.SessionRepository,
	answerRepo repository.SessionAnswerRepository,
	resultRepo repository.ResultRepository,
	clock Clock,
) SessionService {
	return &sessionService{
		quizRepo:    quizRepo,
		sessionRepo: sessionRepo,
		answerRepo:  answerRepo,
		resultRepo:  resultRepo,
		clock:       clock,
	}
}

// Start resumes the caller's active session for the quiz if one is still
// running (same session_id, same expiry — a page reload must not reset the
// timer), or creates a fresh one. force expires any running session first.
func (s *sessionService) Start(userID, quizID uint, force bool) (*dto.SessionStartDTO, error) {
	done, err := s.resultRepo.Exists(userID, quizID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("quizID", quizID).Msg("Start: result existence check failed")
		return nil, apperror.Transient("could not start quiz", err)
	}
	if done {
		return nil, apperror.Conflict("quiz already completed")
	}

	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz not found")
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Start: quiz lookup failed")
		return nil, apperror.Transient("could not start quiz", err)
	}

	now := s.clock.Now()

	fresh := &model.QuizSession{
		SessionID: uuid.NewString(),
		UserID:    userID,
		QuizID:    quizID,
		StartAt:   now,
		Status:    model.SessionStatusActive,
	}
	if quiz.TimeLimitMinutes != nil {
		expires := now.Add(time.Duration(*quiz.TimeLimitMinutes) * time.Minute)
		fresh.ExpiresAt = &expires
	}

	// resume-or-create happens atomically in the repository; an expired
	// leftover transitions to expired in the same transaction
	session, resumed, err := s.sessionRepo.AcquireActive(fresh, now, force)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent start won the active slot
			return nil, apperror.Conflict("a session for this quiz was just started, try again")
		}
		log.Error().Err(err).Uint("userID", userID).Uint("quizID", quizID).Msg("Start: session acquisition failed")
		return nil, apperror.Transient("could not start quiz", err)
	}

	if !resumed {
		log.Info().Str("sessionID", session.SessionID).Uint("userID", userID).Uint("quizID", quizID).Bool("force", force).Msg("Quiz session started")
	}
	return s.buildStartDTO(session, quiz, now), nil
}

// SaveAnswer upserts one selection into the session. A nil answerID records
// a cleared selection.
func (s *sessionService) SaveAnswer(userID, quizID uint, req dto.SaveAnswerRequest) error {
	session, err := s.validateActive(req.SessionID, userID, quizID)
	if err != nil {
		return err
	}

	answer := &model.SessionAnswer{
		SessionID:  session.SessionID,
		UserID:     userID,
		QuizID:     quizID,
		QuestionID: req.QuestionID,
		AnswerID:   req.AnswerID,
	}
	if err := s.answerRepo.Upsert(answer); err != nil {
		log.Error().Err(err).Str("sessionID", session.SessionID).Uint("questionID", req.QuestionID).Msg("SaveAnswer: upsert failed")
		return apperror.Transient("could not save answer", err)
	}
	return nil
}

// Submit grades the submission and finishes the session. The result row and
// the session transition are one atomic unit; a concurrent duplicate loses
// at the (user, quiz) unique index and is reported as a conflict.
func (s *sessionService) Submit(userID, quizID uint, req dto.SubmitRequest) (*dto.SubmitResultDTO, error) {
	session, err := s.validateActive(req.SessionID, userID, quizID)
	if err != nil {
		return nil, err
	}

	done, err := s.resultRepo.Exists(userID, quizID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("quizID", quizID).Msg("Submit: result existence check failed")
		return nil, apperror.Transient("could not submit quiz", err)
	}
	if done {
		return nil, apperror.Conflict("quiz already submitted")
	}

	if len(req.Answers) == 0 {
		return nil, apperror.InvalidInput("submission must contain at least one answer")
	}

	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz not found")
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Submit: quiz lookup failed")
		return nil, apperror.Transient("could not submit quiz", err)
	}

	outcome := Grade(quiz.Questions, req.Answers)

	now := s.clock.Now()
	session.Status = model.SessionStatusSubmitted
	session.Score = &outcome.Earned
	session.SubmittedAt = &now

	result := &model.QuizResult{
		UserID:  userID,
		QuizID:  quizID,
		Score:   outcome.Earned,
		Passed:  outcome.Passed,
		TakenAt: now,
	}
	if err := s.resultRepo.CreateWithSession(result, session); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("quiz already submitted")
		}
		log.Error().Err(err).Str("sessionID", session.SessionID).Msg("Submit: persisting result failed")
		return nil, apperror.Transient("could not submit quiz", err)
	}

	log.Info().Str("sessionID", session.SessionID).Uint("userID", userID).Uint("quizID", quizID).
		Float64("score", outcome.Earned).Float64("total", outcome.TotalPossible).Msg("Quiz submitted")

	// passed is stored but deliberately left out of the response
	return &dto.SubmitResultDTO{
		Ok:     true,
		Score:  outcome.Earned,
		Total:  outcome.TotalPossible,
		Detail: outcome.Detail,
	}, nil
}

// validateActive is the shared validation path of SaveAnswer and Submit:
// existence, ownership, active status, expiry. Detecting a missed expiry
// persists the expired transition before the error returns, so no later
// caller sees a stale active session.
func (s *sessionService) validateActive(sessionID string, userID, quizID uint) (*model.QuizSession, error) {
	session, err := s.sessionRepo.FindBySessionID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("session not found")
		}
		log.Error().Err(err).Str("sessionID", sessionID).Msg("session lookup failed")
		return nil, apperror.Transient("could not load session", err)
	}
	if session.UserID != userID || session.QuizID != quizID {
		return nil, apperror.Unauthorized("session does not belong to this user and quiz")
	}
	if session.Status != model.SessionStatusActive {
		return nil, apperror.Conflict("session is not active")
	}
	if session.ExpiredBy(s.clock.Now()) {
		if markErr := s.sessionRepo.MarkExpired(session); markErr != nil {
			log.Error().Err(markErr).Str("sessionID", sessionID).Msg("lazy expiry persist failed")
			return nil, apperror.Transient("could not update session", markErr)
		}
		return nil, apperror.SessionExpired("session time limit exceeded")
	}
	return session, nil
}

func (s *sessionService) buildStartDTO(session *model.QuizSession, quiz *model.Quiz, now time.Time) *dto.SessionStartDTO {
	out := &dto.SessionStartDTO{
		Ok:          true,
		SessionID:   session.SessionID,
		StartAt:     session.StartAt,
		StartAtMs:   session.StartAt.UnixMilli(),
		ServerNowMs: now.UnixMilli(),
		Quiz:        toQuizDetailDTO(quiz),
	}
	if session.ExpiresAt != nil {
		expires := *session.ExpiresAt
		ms := expires.UnixMilli()
		out.ExpiresAt = &expires
		out.ExpiresAtMs = &ms
	}
	return out
}
