// Package auth implements token issuance/verification and password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aidriven/todo-backend/models"
)

var (
	// ErrTokenMalformed indicates the credential is not a parseable token.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenSignatureInvalid indicates the signature does not match the
	// server secret.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	// ErrTokenExpired indicates the token's expiration timestamp has passed.
	ErrTokenExpired = errors.New("token is expired")
)

// TokenService issues and verifies signed, time-limited access tokens.
// Verification keeps no state between calls: it is a pure function of the
// token, the secret, and the clock.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a token service. now may be nil, in which case
// time.Now is used; tests inject a fixed clock.
func NewTokenService(secret string, ttl time.Duration, now func() time.Time) *TokenService {
	if now == nil {
		now = time.Now
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue signs a token carrying userID, valid for the configured lifetime.
func (s *TokenService) Issue(userID string) (string, error) {
	issued := s.now()
	claims := models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the embedded
// user identity. Failures are classified as malformed, signature-invalid,
// or expired.
func (s *TokenService) Verify(tokenString string) (string, error) {
	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		default:
			return "", ErrTokenSignatureInvalid
		}
	}
	if claims.UserID == "" {
		return "", ErrTokenMalformed
	}
	return claims.UserID, nil
}
