package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// MockAccessToken is handed out when no JWT_SECRET is configured. It carries
// no identity and is never accepted by ParseSessionToken.
const MockAccessToken = "mock-jwt-token"

const sessionTTL = 7 * 24 * time.Hour

var ErrInvalidSessionToken = errors.New("invalid session token")

// IssueSessionToken signs an HS256 access token for the user, or returns
// MockAccessToken when secret is empty.
func IssueSessionToken(secret string, userID uuid.UUID, email string, now time.Time) (string, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return MockAccessToken, nil
	}
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseSessionToken verifies raw and returns its subject.
func ParseSessionToken(secret, raw string) (uuid.UUID, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" || raw == "" || raw == MockAccessToken {
		return uuid.Nil, ErrInvalidSessionToken
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, ErrInvalidSessionToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidSessionToken
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidSessionToken
	}
	return id, nil
}
