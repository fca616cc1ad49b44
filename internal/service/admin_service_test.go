package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securinets-fst/securiquiz/internal/apperror"
	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/model"
)

type fakeAdminLogRepo struct {
	entries []model.AdminLog
}

func (r *fakeAdminLogRepo) Create(entry *model.AdminLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAdminLogRepo) FindRecent(limit int) ([]model.AdminLog, error) {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]model.AdminLog, limit)
	copy(out, r.entries[len(r.entries)-limit:])
	return out, nil
}

type adminFixture struct {
	svc     AdminService
	quizzes *fakeQuizRepo
	users   *fakeUserRepo
	log     *fakeAdminLogRepo
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	quizzes := &fakeQuizRepo{quizzes: make(map[uint]*model.Quiz)}
	users := newFakeUserRepo()
	results := &fakeResultRepo{results: make(map[[2]uint]*model.QuizResult)}
	logRepo := &fakeAdminLogRepo{}

	return &adminFixture{
		svc:     NewAdminService(quizzes, users, results, logRepo),
		quizzes: quizzes,
		users:   users,
		log:     logRepo,
	}
}

func validQuizCreate() dto.QuizCreateDTO {
	return dto.QuizCreateDTO{
		Title:            "Web Security 101",
		TimeLimitMinutes: ptr(20),
		Questions: []dto.QuestionCreateDTO{
			{
				Title:  "What does XSS stand for?",
				Points: ptr(10.0),
				Answers: []dto.AnswerCreateDTO{
					{Text: "Cross-site scripting", IsCorrect: true},
					{Text: "Extra-secure sockets"},
				},
			},
		},
	}
}

func TestCreateQuiz_Succeeds(t *testing.T) {
	f := newAdminFixture(t)

	created, err := f.svc.CreateQuiz(1, validQuizCreate())
	require.NoError(t, err)
	assert.True(t, created.Ok)
	assert.Equal(t, "Web Security 101", created.Title)

	require.Len(t, f.log.entries, 1)
	assert.Equal(t, "create_quiz", f.log.entries[0].Action)
	assert.Equal(t, uint(1), f.log.entries[0].AdminID)
}

func TestCreateQuiz_Validation(t *testing.T) {
	f := newAdminFixture(t)

	tests := []struct {
		name   string
		mutate func(*dto.QuizCreateDTO)
	}{
		{"no questions", func(q *dto.QuizCreateDTO) { q.Questions = nil }},
		{"zero time limit", func(q *dto.QuizCreateDTO) { q.TimeLimitMinutes = ptr(0) }},
		{"single answer option", func(q *dto.QuizCreateDTO) {
			q.Questions[0].Answers = q.Questions[0].Answers[:1]
		}},
		{"no correct answer", func(q *dto.QuizCreateDTO) {
			q.Questions[0].Answers[0].IsCorrect = false
		}},
		{"negative points", func(q *dto.QuizCreateDTO) { q.Questions[0].Points = ptr(-1.0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuizCreate()
			tt.mutate(&req)
			_, err := f.svc.CreateQuiz(1, req)
			assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
		})
	}
}

func TestCreateQuiz_DefaultsQuestionOrder(t *testing.T) {
	f := newAdminFixture(t)

	req := validQuizCreate()
	req.Questions = append(req.Questions, dto.QuestionCreateDTO{
		Title:  "Second",
		Points: ptr(10.0),
		Answers: []dto.AnswerCreateDTO{
			{Text: "yes", IsCorrect: true},
			{Text: "no"},
		},
	})

	created, err := f.svc.CreateQuiz(1, req)
	require.NoError(t, err)

	quiz := f.quizzes.quizzes[created.QuizID]
	require.NotNil(t, quiz)
	assert.Equal(t, 1, quiz.Questions[0].OrderInQuiz)
	assert.Equal(t, 2, quiz.Questions[1].OrderInQuiz)
}

func TestDeleteQuiz(t *testing.T) {
	f := newAdminFixture(t)
	f.quizzes.quizzes[3] = &model.Quiz{ID: 3, Title: "Old"}

	require.NoError(t, f.svc.DeleteQuiz(1, 3))
	assert.NotContains(t, f.quizzes.quizzes, uint(3))
	require.Len(t, f.log.entries, 1)
	assert.Equal(t, "delete_quiz", f.log.entries[0].Action)

	err := f.svc.DeleteQuiz(1, 3)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestBanUnbanUser(t *testing.T) {
	f := newAdminFixture(t)
	require.NoError(t, f.users.Create(&model.User{Email: "m@mail.tn", Role: model.RoleMember}))
	memberID := f.users.users["m@mail.tn"].ID

	require.NoError(t, f.svc.BanUser(1, memberID))
	assert.Equal(t, model.RoleBanned, f.users.users["m@mail.tn"].Role)

	// banning twice is a no-op conflict
	err := f.svc.BanUser(1, memberID)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	require.NoError(t, f.svc.UnbanUser(1, memberID))
	assert.Equal(t, model.RoleMember, f.users.users["m@mail.tn"].Role)

	actions := []string{f.log.entries[0].Action, f.log.entries[1].Action}
	assert.Equal(t, []string{"ban_user", "unban_user"}, actions)
}

func TestBanUser_AdminProtected(t *testing.T) {
	f := newAdminFixture(t)
	require.NoError(t, f.users.Create(&model.User{Email: "root@mail.tn", Role: model.RoleAdmin}))
	adminID := f.users.users["root@mail.tn"].ID

	err := f.svc.BanUser(1, adminID)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	assert.Equal(t, model.RoleAdmin, f.users.users["root@mail.tn"].Role)
}

func TestBanUser_UnknownUser(t *testing.T) {
	f := newAdminFixture(t)

	err := f.svc.BanUser(1, 99)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
