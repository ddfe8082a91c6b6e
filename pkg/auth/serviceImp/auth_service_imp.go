package serviceImp

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	repo "jornales/pkg/auth/repository"
	"jornales/pkg/auth/service"
)

const sessionTTL = 12 * time.Hour

type claims struct {
	Email string `json:"email"`
	Rol   string `json:"rol"`
	jwt.RegisteredClaims
}

type authSvc struct {
	repo   repo.AuthRepository
	secret []byte
}

func New(r repo.AuthRepository, signingSecret string) service.AuthService {
	return &authSvc{repo: r, secret: []byte(signingSecret)}
}

func (s *authSvc) Login(email, secret string) (string, *service.Identity, error) {
	p, err := s.repo.ProfileByEmail(email)
	if err != nil {
		return "", nil, service.ErrBadCredentials
	}
	if subtle.ConstantTimeCompare([]byte(p.Secret), []byte(secret)) != 1 {
		return "", nil, service.ErrBadCredentials
	}

	id := &service.Identity{Email: p.Email, Rol: strings.ToUpper(p.Rol)}
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: id.Email,
		Rol:   id.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session: %w", err)
	}
	return signed, id, nil
}

func (s *authSvc) Parse(token string) (*service.Identity, error) {
	var cl claims
	parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, service.ErrBadCredentials
	}
	return &service.Identity{Email: cl.Email, Rol: cl.Rol}, nil
}
