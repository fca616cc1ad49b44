package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/securinets-fst/securiquiz/config"
	"github.com/securinets-fst/securiquiz/internal/apperror"
	"github.com/securinets-fst/securiquiz/internal/model"
)

// Claims is the bearer-token payload: subject id, display name and role.
type Claims struct {
	UserID   uint   `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the HS256 bearer tokens consumed by the
// auth middleware. The rest of the core only ever sees the validated
// (user_id, role) pair.
type TokenService interface {
	Issue(user *model.User) (string, error)
	Parse(tokenStr string) (*Claims, error)
}

type tokenService struct {
	secret   []byte
	validity time.Duration
	clock    Clock
}

func NewTokenService(cfg *config.Config, clock Clock) TokenService {
	return &tokenService{
		secret:   []byte(cfg.JWT.Secret),
		validity: cfg.JWT.Validity,
		clock:    clock,
	}
}

func (s *tokenService) Issue(user *model.User) (string, error) {
	now := s.clock.Now()
	claims := &Claims{
		UserID:   user.ID,
		FullName: user.FullName,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "securiquiz",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.Unauthenticated("unexpected token signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		return nil, apperror.Unauthenticated("invalid or expired token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperror.Unauthenticated("invalid token payload")
	}
	return claims, nil
}
