// Package service implements session token issuance and verification.
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
)

// SessionDuration is the fixed lifetime of a session token. Expiry is
// absolute and stateless: there is no refresh, sliding window, or revocation
// store.
const SessionDuration = time.Hour

// SessionClaims is the payload embedded in a session token. Subject carries
// the record's storage id; UserID carries the identity key the principal
// authenticated with.
type SessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for session token operations. The same
// signing secret is shared between issuance and verification.
type TokenService interface {
	// Issue signs a session token for the given identity, expiring one hour
	// after issuance.
	Issue(subjectID, identityKey string) (string, error)

	// Verify validates signature and expiry, returning the embedded claims.
	// Any failure (bad signature, malformed token, expiry) yields
	// ErrUnauthenticated.
	Verify(tokenString string) (*SessionClaims, error)
}

type jwtTokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) TokenService {
	return &jwtTokenService{secret: []byte(secret)}
}

// Issue mints an HS256-signed token carrying the identity's storage id and key.
func (s *jwtTokenService) Issue(subjectID, identityKey string) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		UserID: identityKey,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates the token. The keyfunc pins the signing method
// to HMAC so a token with a swapped algorithm never reaches signature
// verification with our secret.
func (s *jwtTokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, authDomain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, authDomain.ErrUnauthenticated
	}

	return claims, nil
}
