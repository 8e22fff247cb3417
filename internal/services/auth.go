package services

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues panel tokens against a single shared admin password.
// ADMIN_PASSWORD may hold either the plain secret or a bcrypt hash of it.
type AuthService struct {
	adminPassword string
	jwtSecret     []byte
}

func NewAuthService(adminPassword, jwtSecret string) *AuthService {
	return &AuthService{adminPassword: adminPassword, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Login(password string) (string, error) {
	if strings.HasPrefix(s.adminPassword, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)); err != nil {
			return "", errors.New("invalid credentials")
		}
	} else if subtle.ConstantTimeCompare([]byte(s.adminPassword), []byte(password)) != 1 {
		return "", errors.New("invalid credentials")
	}

	return s.GenerateToken()
}

func (s *AuthService) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "panel",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}
