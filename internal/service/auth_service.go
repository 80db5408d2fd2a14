package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"sheweds-backend/internal/config"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const sessionTTL = 72 * time.Hour

// AuthService guards the admin surface. The storefront has no user accounts;
// a single shared password opens an admin session carried as a signed token.
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login checks the admin password and returns a session token. When a bcrypt
// hash is configured it takes precedence over the plain password.
func (s *AuthService) Login(password string) (string, error) {
	if !s.checkPassword(password) {
		return "", ErrInvalidCredentials
	}
	return s.generateToken()
}

func (s *AuthService) checkPassword(password string) bool {
	if s.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.AdminPassword), []byte(password)) == 1
}

func (s *AuthService) generateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SessionSecret))
}

// ValidateToken parses a session token and reports whether it grants admin
// access.
func (s *AuthService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return ErrInvalidCredentials
	}
	return nil
}

// SessionMaxAge reports the cookie lifetime in seconds.
func (s *AuthService) SessionMaxAge() int {
	return int(sessionTTL.Seconds())
}
