package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/securinets-fst/securiquiz/internal/apperror"
	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/model"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time          { return c.now }
func (c *fixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeQuizRepo struct {
	quizzes map[uint]*model.Quiz
}

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error { r.quizzes[quiz.ID] = quiz; return nil }

func (r *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	return r.FindByIDWithQuestions(id)
}

func (r *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (r *fakeQuizRepo) FindAllWithQuestionCount() ([]struct {
	model.Quiz
	QuestionCount int
}, error) {
	return nil, nil
}

func (r *fakeQuizRepo) Delete(id uint) error { delete(r.quizzes, id); return nil }

type fakeSessionRepo struct {
	sessions   map[string]*model.QuizSession
	acquireErr error
}

func (r *fakeSessionRepo) FindBySessionID(sessionID string) (*model.QuizSession, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) MarkExpired(session *model.QuizSession) error {
	session.Status = model.SessionStatusExpired
	r.sessions[session.SessionID] = session
	return nil
}

func (r *fakeSessionRepo) AcquireActive(fresh *model.QuizSession, now time.Time, force bool) (*model.QuizSession, bool, error) {
	if r.acquireErr != nil {
		return nil, false, r.acquireErr
	}
	if !force {
		var latest *model.QuizSession
		for _, s := range r.sessions {
			if s.UserID == fresh.UserID && s.QuizID == fresh.QuizID && s.Status == model.SessionStatusActive {
				if latest == nil || s.StartAt.After(latest.StartAt) {
					latest = s
				}
			}
		}
		if latest != nil && !latest.ExpiredBy(now) {
			return latest, true, nil
		}
	}
	for _, s := range r.sessions {
		if s.UserID == fresh.UserID && s.QuizID == fresh.QuizID && s.Status == model.SessionStatusActive {
			s.Status = model.SessionStatusExpired
		}
	}
	r.sessions[fresh.SessionID] = fresh
	return fresh, false, nil
}

type fakeAnswerRepo struct {
	answers map[string]map[uint]*model.SessionAnswer
}

func (r *fakeAnswerRepo) Upsert(answer *model.SessionAnswer) error {
	if r.answers[answer.SessionID] == nil {
		r.answers[answer.SessionID] = make(map[uint]*model.SessionAnswer)
	}
	r.answers[answer.SessionID][answer.QuestionID] = answer
	return nil
}

func (r *fakeAnswerRepo) FindBySession(sessionID string) ([]model.SessionAnswer, error) {
	var out []model.SessionAnswer
	for _, a := range r.answers[sessionID] {
		out = append(out, *a)
	}
	return out, nil
}

type fakeResultRepo struct {
	results   map[[2]uint]*model.QuizResult
	createErr error
}

func (r *fakeResultRepo) Exists(userID, quizID uint) (bool, error) {
	_, ok := r.results[[2]uint{userID, quizID}]
	return ok, nil
}

func (r *fakeResultRepo) FindByUserAndQuiz(userID, quizID uint) (*model.QuizResult, error) {
	res, ok := r.results[[2]uint{userID, quizID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return res, nil
}

func (r *fakeResultRepo) FindAllByUser(userID uint) ([]model.QuizResult, error) {
	var out []model.QuizResult
	for key, res := range r.results {
		if key[0] == userID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeResultRepo) FindAll() ([]model.QuizResult, error) {
	var out []model.QuizResult
	for _, res := range r.results {
		out = append(out, *res)
	}
	return out, nil
}

func (r *fakeResultRepo) CreateWithSession(result *model.QuizResult, session *model.QuizSession) error {
	if r.createErr != nil {
		return r.createErr
	}
	key := [2]uint{result.UserID, result.QuizID}
	if _, ok := r.results[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.results[key] = result
	return nil
}

type sessionFixture struct {
	svc      SessionService
	clock    *fixedClock
	sessions *fakeSessionRepo
	answers  *fakeAnswerRepo
	results  *fakeResultRepo
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	clock := &fixedClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	quizzes := &fakeQuizRepo{quizzes: map[uint]*model.Quiz{
		1: {
			ID:               1,
			Title:            "Network Security Basics",
			TimeLimitMinutes: ptr(30),
			Questions:        twoQuestionQuiz(),
		},
		2: {
			ID:        2,
			Title:     "Untimed Trivia",
			Questions: twoQuestionQuiz(),
		},
	}}
	sessions := &fakeSessionRepo{sessions: make(map[string]*model.QuizSession)}
	answers := &fakeAnswerRepo{answers: make(map[string]map[uint]*model.SessionAnswer)}
	results := &fakeResultRepo{results: make(map[[2]uint]*model.QuizResult)}

	return &sessionFixture{
		svc:      NewSessionService(quizzes, sessions, answers, results, clock),
		clock:    clock,
		sessions: sessions,
		answers:  answers,
		results:  results,
	}
}

func TestStart_CreatesTimedSession(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	assert.True(t, resp.Ok)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, f.clock.now.UnixMilli(), resp.StartAtMs)
	assert.Equal(t, f.clock.now.UnixMilli(), resp.ServerNowMs)
	require.NotNil(t, resp.ExpiresAtMs)
	assert.Equal(t, f.clock.now.Add(30*time.Minute).UnixMilli(), *resp.ExpiresAtMs)
	assert.Equal(t, uint(1), resp.Quiz.QuizID)
	require.Len(t, resp.Quiz.Questions, 2)
}

func TestStart_UntimedQuizHasNoExpiry(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.svc.Start(7, 2, false)
	require.NoError(t, err)
	assert.Nil(t, resp.ExpiresAt)
	assert.Nil(t, resp.ExpiresAtMs)
}

func TestStart_ResumeIsIdempotent(t *testing.T) {
	f := newSessionFixture(t)

	first, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	f.clock.Advance(5 * time.Minute)

	second, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	assert.Equal(t, first.SessionID, second.SessionID, "resume must not mint a new session")
	assert.Equal(t, first.StartAtMs, second.StartAtMs)
	require.NotNil(t, second.ExpiresAtMs)
	assert.Equal(t, *first.ExpiresAtMs, *second.ExpiresAtMs, "resume must not extend the deadline")
	assert.Greater(t, second.ServerNowMs, first.ServerNowMs)
}

func TestStart_ForceReplacesRunningSession(t *testing.T) {
	f := newSessionFixture(t)

	first, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	second, err := f.svc.Start(7, 1, true)
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)

	// the abandoned session is terminal: its ID no longer accepts answers
	err = f.svc.SaveAnswer(7, 1, dto.SaveAnswerRequest{
		SessionID:  first.SessionID,
		QuestionID: 1,
		AnswerID:   ptr(uint(1)),
	})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestStart_AfterExpiryMintsNewSession(t *testing.T) {
	f := newSessionFixture(t)

	first, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	f.clock.Advance(31 * time.Minute)

	second, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)

	old := f.sessions.sessions[first.SessionID]
	assert.Equal(t, model.SessionStatusExpired, old.Status, "lazy expiry must be persisted")
}

func TestStart_ConcurrentStartLosesAtUniqueIndex(t *testing.T) {
	// Two starts race past each other's uncommitted rows; the partial
	// unique index on active (user, quiz) decides, and the loser's
	// duplicate-key error is translated.
	f := newSessionFixture(t)
	f.sessions.acquireErr = gorm.ErrDuplicatedKey

	_, err := f.svc.Start(7, 1, false)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestStart_CompletedQuizConflicts(t *testing.T) {
	f := newSessionFixture(t)
	f.results.results[[2]uint{7, 1}] = &model.QuizResult{UserID: 7, QuizID: 1}

	_, err := f.svc.Start(7, 1, false)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestStart_UnknownQuiz(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.svc.Start(7, 99, false)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestSaveAnswer_UpsertOverwritesSelection(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	req := dto.SaveAnswerRequest{SessionID: resp.SessionID, QuestionID: 1, AnswerID: ptr(uint(1))}
	require.NoError(t, f.svc.SaveAnswer(7, 1, req))

	req.AnswerID = ptr(uint(2))
	require.NoError(t, f.svc.SaveAnswer(7, 1, req))

	saved := f.answers.answers[resp.SessionID]
	require.Len(t, saved, 1)
	assert.Equal(t, uint(2), *saved[1].AnswerID)

	// nil clears the selection but keeps the row
	req.AnswerID = nil
	require.NoError(t, f.svc.SaveAnswer(7, 1, req))
	assert.Nil(t, saved[1].AnswerID)
}

func TestSaveAnswer_ForeignSessionRejected(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	err = f.svc.SaveAnswer(8, 1, dto.SaveAnswerRequest{
		SessionID:  resp.SessionID,
		QuestionID: 1,
		AnswerID:   ptr(uint(1)),
	})
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestSaveAnswer_ExpiredSessionPersistsTransition(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	f.clock.Advance(31 * time.Minute)

	err = f.svc.SaveAnswer(7, 1, dto.SaveAnswerRequest{
		SessionID:  resp.SessionID,
		QuestionID: 1,
		AnswerID:   ptr(uint(1)),
	})
	assert.Equal(t, apperror.KindSessionExpired, apperror.KindOf(err))
	assert.Equal(t, model.SessionStatusExpired, f.sessions.sessions[resp.SessionID].Status)
}

func TestSubmit_GradesAndFinishesSession(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	result, err := f.svc.Submit(7, 1, dto.SubmitRequest{
		SessionID: resp.SessionID,
		Answers: []dto.SubmittedAnswerDTO{
			{QuestionID: 1, AnswerID: ptr(uint(1))},
			{QuestionID: 2, AnswerID: ptr(uint(4))},
		},
	})
	require.NoError(t, err)

	assert.True(t, result.Ok)
	assert.Equal(t, 10.0, result.Score)
	assert.Equal(t, 20.0, result.Total)
	require.Len(t, result.Detail, 2)

	session := f.sessions.sessions[resp.SessionID]
	assert.Equal(t, model.SessionStatusSubmitted, session.Status)
	require.NotNil(t, session.Score)
	assert.Equal(t, 10.0, *session.Score)

	stored := f.results.results[[2]uint{7, 1}]
	require.NotNil(t, stored)
	assert.Equal(t, 10.0, stored.Score)
	assert.True(t, stored.Passed, "10/20 sits on the pass boundary")
}

func TestSubmit_EmptyAnswersRejected(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	_, err = f.svc.Submit(7, 1, dto.SubmitRequest{SessionID: resp.SessionID})
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestSubmit_SecondSubmitConflicts(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	submit := dto.SubmitRequest{
		SessionID: resp.SessionID,
		Answers:   []dto.SubmittedAnswerDTO{{QuestionID: 1, AnswerID: ptr(uint(1))}},
	}
	_, err = f.svc.Submit(7, 1, submit)
	require.NoError(t, err)

	_, err = f.svc.Submit(7, 1, submit)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestSubmit_DuplicateKeyRaceReportsConflict(t *testing.T) {
	// Two submissions race past the existence check; the storage layer's
	// unique index decides, and the loser's error is translated.
	f := newSessionFixture(t)
	f.results.createErr = gorm.ErrDuplicatedKey

	resp, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	_, err = f.svc.Submit(7, 1, dto.SubmitRequest{
		SessionID: resp.SessionID,
		Answers:   []dto.SubmittedAnswerDTO{{QuestionID: 1, AnswerID: ptr(uint(1))}},
	})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestSubmit_ExpiredSessionRejected(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.svc.Start(7, 1, false)
	require.NoError(t, err)

	f.clock.Advance(31 * time.Minute)

	_, err = f.svc.Submit(7, 1, dto.SubmitRequest{
		SessionID: resp.SessionID,
		Answers:   []dto.SubmittedAnswerDTO{{QuestionID: 1, AnswerID: ptr(uint(1))}},
	})
	assert.Equal(t, apperror.KindSessionExpired, apperror.KindOf(err))
}

func TestSubmit_UnknownSession(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.svc.Submit(7, 1, dto.SubmitRequest{
		SessionID: "nope",
		Answers:   []dto.SubmittedAnswerDTO{{QuestionID: 1, AnswerID: ptr(uint(1))}},
	})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
