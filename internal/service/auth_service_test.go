package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/securinets-fst/securiquiz/config"
	"github.com/securinets-fst/securiquiz/internal/apperror"
	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/model"
)

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if _, ok := r.users[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(id uint, role string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type recordingMailSender struct {
	to    []string
	codes []string
}

func (m *recordingMailSender) SendVerificationCode(to, fullName, code string) {
	m.to = append(m.to, to)
	m.codes = append(m.codes, code)
}

type authFixture struct {
	svc   AuthService
	users *fakeUserRepo
	mail  *recordingMailSender
	clock *fixedClock
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	clock := &fixedClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	cfg := &config.Config{JWT: config.JWT{Secret: "test-secret", Validity: 24 * time.Hour}}
	users := newFakeUserRepo()
	mail := &recordingMailSender{}
	pending := NewPendingSignupStore(WithClock(clock))

	return &authFixture{
		svc:   NewAuthService(users, pending, NewTokenService(cfg, clock), mail),
		users: users,
		mail:  mail,
		clock: clock,
	}
}

func TestSignupVerifyLogin_FullFlow(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.Signup(dto.SignupRequest{
		FullName: "Amira B",
		Email:    "Amira@Mail.TN",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	// no persistent user yet, only a mailed code
	_, err = f.users.FindByEmail("amira@mail.tn")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.Len(t, f.mail.codes, 1)
	assert.Equal(t, []string{"amira@mail.tn"}, f.mail.to, "email is normalized before use")

	resp, err := f.svc.Verify(dto.VerifyRequest{Email: "amira@mail.tn", Code: f.mail.codes[0]})
	require.NoError(t, err)
	assert.True(t, resp.Ok)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleMember, resp.User.Role)

	login, err := f.svc.Login(dto.LoginRequest{Email: "amira@mail.tn", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestSignup_ExistingEmailConflicts(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.users.Create(&model.User{Email: "taken@mail.tn", Role: model.RoleMember}))

	err := f.svc.Signup(dto.SignupRequest{FullName: "X", Email: "taken@mail.tn", Password: "whatever1"})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestVerify_WrongCode(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Signup(dto.SignupRequest{FullName: "X", Email: "a@mail.tn", Password: "whatever1"}))

	wrong := "99999"
	if wrong == f.mail.codes[0] {
		wrong = "88888"
	}
	_, err := f.svc.Verify(dto.VerifyRequest{Email: "a@mail.tn", Code: wrong})
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, f.users.Create(&model.User{
		Email: "a@mail.tn", PasswordHash: string(hash), Role: model.RoleMember,
	}))

	_, err = f.svc.Login(dto.LoginRequest{Email: "a@mail.tn", Password: "wrong-pass"})
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))

	// unknown emails get the same answer as wrong passwords
	_, err = f.svc.Login(dto.LoginRequest{Email: "nobody@mail.tn", Password: "wrong-pass"})
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}

func TestLogin_BannedUserRefused(t *testing.T) {
	f := newAuthFixture(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, f.users.Create(&model.User{
		Email: "banned@mail.tn", PasswordHash: string(hash), Role: model.RoleBanned,
	}))

	_, err = f.svc.Login(dto.LoginRequest{Email: "banned@mail.tn", Password: "right-pass"})
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestTokenService_IssueAndParse(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	cfg := &config.Config{JWT: config.JWT{Secret: "test-secret", Validity: time.Hour}}
	tokens := NewTokenService(cfg, clock)

	token, err := tokens.Issue(&model.User{ID: 42, FullName: "Amira B", Role: model.RoleAdmin})
	require.NoError(t, err)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, "securiquiz", claims.Issuer)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	cfg := &config.Config{JWT: config.JWT{Secret: "test-secret", Validity: time.Hour}}
	tokens := NewTokenService(cfg, clock)

	token, err := tokens.Issue(&model.User{ID: 42, Role: model.RoleMember})
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)

	_, err = tokens.Parse(token)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}

func TestTokenService_RejectsTampering(t *testing.T) {
	clock := &fixedClock{now: time.Now()}
	tokens := NewTokenService(&config.Config{JWT: config.JWT{Secret: "secret-a", Validity: time.Hour}}, clock)
	other := NewTokenService(&config.Config{JWT: config.JWT{Secret: "secret-b", Validity: time.Hour}}, clock)

	token, err := tokens.Issue(&model.User{ID: 1, Role: model.RoleMember})
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))

	_, err = tokens.Parse(token + "x")
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}
