package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// DefaultTokenTTL is used when Configure is called with a zero TTL.
const DefaultTokenTTL = 24 * time.Hour

var (
	mu         sync.RWMutex
	signingKey []byte
	tokenTTL   = DefaultTokenTTL
)

// Configure sets the HMAC key and the lifetime of issued access tokens.
func Configure(secret []byte, ttl time.Duration) {
	mu.Lock()
	defer mu.Unlock()

	signingKey = secret
	tokenTTL = ttl
	if ttl <= 0 {
		tokenTTL = DefaultTokenTTL
	}
}

// IssueToken returns a signed access token for the user and its expiry time.
// The token only names the user, the role is resolved on every request.
func IssueToken(userID uuid.UUID) (string, time.Time, error) {
	mu.RLock()
	key, ttl := signingKey, tokenTTL
	mu.RUnlock()

	if len(key) == 0 {
		return "", time.Time{}, ErrNotConfigured
	}

	now := time.Now().UTC()
	expires := now.Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString(key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing access token: %w", err)
	}

	return signed, expires, nil
}

// ParseToken verifies a token and returns the ID of the user it was issued for.
func ParseToken(tokenString string) (uuid.UUID, error) {
	mu.RLock()
	key := signingKey
	mu.RUnlock()

	if len(key) == 0 {
		return uuid.Nil, ErrNotConfigured
	}

	var c jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return userID, nil
}
