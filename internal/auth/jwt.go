package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser   = "user"
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

const tokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Manager issues and verifies the bearer tokens used by all three actor
// roles. Tokens carry the subject id and role and expire after 7 days.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

func (m *Manager) GenerateToken(subjectID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(subjectID),
		"role": role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) ParseToken(tokenString string) (uint, string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	return uint(sub), role, nil
}
