// Package auth issues and validates the signed session tokens carried in the
// session cookie.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidSession is returned for any token that does not validate.
var ErrInvalidSession = errors.New("invalid session")

// SessionManager handles HS256 session token generation and validation.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a new session manager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed token with the user ID as subject.
// It returns the token and its expiry, which the cookie mirrors.
func (m *SessionManager) Issue(userID int64) (string, time.Time, error) {
	now := m.now()
	expires := now.Add(m.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}

	return signed, expires, nil
}

// Validate parses a session token and returns the user ID it was issued for.
// Every failure wraps ErrInvalidSession.
func (m *SessionManager) Validate(tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, fmt.Errorf("%w: token is empty", ErrInvalidSession)
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("%w: invalid claims", ErrInvalidSession)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: invalid subject %q", ErrInvalidSession, claims.Subject)
	}

	return userID, nil
}
