package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"planner/model"
)

const sessionIssuer = "planner"

// SessionManager issues and verifies the stateless HS256 session tokens.
type SessionManager struct {
	secret    []byte
	maxAge    time.Duration
	updateAge time.Duration
	now       func() time.Time
}

func NewSessionManager(secret string, maxAge, updateAge time.Duration) *SessionManager {
	return &SessionManager{
		secret:    []byte(secret),
		maxAge:    maxAge,
		updateAge: updateAge,
		now:       time.Now,
	}
}

// SetClock replaces the wall clock, for tests.
func (m *SessionManager) SetClock(now func() time.Time) {
	m.now = now
}

func (m *SessionManager) MaxAge() time.Duration {
	return m.maxAge
}

// Issue signs a token for u valid for the configured max age.
func (m *SessionManager) Issue(u *model.User) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.maxAge)
	claims := &model.SessionClaims{
		UserID: u.UserID,
		Email:  u.Email,
		Name:   u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   u.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}
	return signed, claims.ExpiresAt.Time, nil
}

// Parse verifies signature, issuer and expiry. Every failure wraps
// ErrUnauthorized.
func (m *SessionManager) Parse(tokenString string) (*model.SessionClaims, error) {
	claims := &model.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: token has no userId", ErrUnauthorized)
	}
	return claims, nil
}

// NeedsRefresh reports whether the token is older than the update age and
// should be reissued with a fresh expiry.
func (m *SessionManager) NeedsRefresh(c *model.SessionClaims) bool {
	if m.updateAge <= 0 {
		return false
	}
	if c.IssuedAt == nil {
		return true
	}
	return m.now().Sub(c.IssuedAt.Time) >= m.updateAge
}
