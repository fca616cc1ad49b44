package service

import (
	"errors"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/securinets-fst/securiquiz/internal/apperror"
	"github.com/securinets-fst/securiquiz/internal/dto"
	"github.com/securinets-fst/securiquiz/internal/model"
	"github.com/securinets-fst/securiquiz/internal/repository"
)

// AuthService covers the signup/verify/login flow. Unverified registrations
// live only in the pending store; a persistent user appears on successful
// verification.
type AuthService interface {
	Signup(req dto.SignupRequest) error
	Verify(req dto.VerifyRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	pending  *PendingSignupStore
	tokens   TokenService
	mail     MailSender
}

func NewAuthService(
	userRepo repository.UserRepository,
	pending *PendingSignupStore,
	tokens TokenService,
	mail MailSender,
) AuthService {
	return &authService{userRepo: userRepo, pending: pending, tokens: tokens, mail: mail}
}

func (s *authService) Signup(req dto.SignupRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepo.FindByEmail(email)
	switch {
	case err == nil:
		return apperror.Conflict("a user with this email already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error().Err(err).Str("email", email).Msg("Signup: email lookup failed")
		return apperror.Transient("could not process signup", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Signup: password hashing failed")
		return apperror.Transient("could not process signup", err)
	}

	code, err := s.pending.CreateOrReplace(email, req.FullName, string(passwordHash))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Signup: pending store write failed")
		return apperror.Transient("could not process signup", err)
	}

	// fire-and-forget: delivery failures are logged, never surfaced
	s.mail.SendVerificationCode(email, req.FullName, code)

	log.Info().Str("email", email).Msg("Signup code issued")
	return nil
}

func (s *authService) Verify(req dto.VerifyRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	pending, err := s.pending.Verify(email, req.Code)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     pending.FullName,
		Email:        email,
		PasswordHash: pending.PasswordHash,
		Role:         model.RoleMember,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("a user with this email already exists")
		}
		log.Error().Err(err).Str("email", email).Msg("Verify: user creation failed")
		return nil, apperror.Transient("could not create user", err)
	}

	log.Info().Uint("userID", user.ID).Str("email", email).Msg("User verified and created")
	return s.authResponse(user)
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthenticated("invalid credentials")
		}
		log.Error().Err(err).Str("email", email).Msg("Login: email lookup failed")
		return nil, apperror.Transient("could not process login", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperror.Unauthenticated("invalid credentials")
	}
	if user.Role == model.RoleBanned {
		return nil, apperror.Unauthorized("account is banned")
	}

	return s.authResponse(user)
}

func (s *authService) authResponse(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Token issue failed")
		return nil, apperror.Transient("could not issue token", err)
	}

	var userDTO dto.UserDTO
	if err := copier.Copy(&userDTO, user); err != nil {
		log.Error().Err(err).Msg("Failed to copy user to DTO")
		return nil, apperror.Transient("could not prepare response", err)
	}
	return &dto.AuthResponse{Ok: true, Token: token, User: userDTO}, nil
}
