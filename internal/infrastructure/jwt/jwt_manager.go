package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/usecase"
)

// sessionTTL is the lifetime of a session credential.
const sessionTTL = time.Hour

// JWTManager signs and verifies HS256 session tokens with a process-wide
// secret.
type JWTManager struct {
	secret []byte
}

// check the usecase interface is satisfied at compile time
var _ usecase.TokenService = (*JWTManager)(nil)

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

// GenerateSessionToken issues a token carrying the user identifier, expiring
// one hour from issuance.
func (m *JWTManager) GenerateSessionToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// VerifySessionToken validates signature and expiry and returns the user
// identifier.
func (m *JWTManager) VerifySessionToken(tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperr.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", apperr.ErrInvalidToken
	}
	return claims.Subject, nil
}
