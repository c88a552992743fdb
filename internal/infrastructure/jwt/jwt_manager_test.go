package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/infrastructure/jwt"
)

const testSecret = "test-secret-key"

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := jwt.NewJWTManager(testSecret)

	token, err := manager.GenerateSessionToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	token, err := jwt.NewJWTManager("other-secret").GenerateSessionToken("user-123")
	require.NoError(t, err)

	_, err = jwt.NewJWTManager(testSecret).VerifySessionToken(token)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifySessionToken_Tampered(t *testing.T) {
	manager := jwt.NewJWTManager(testSecret)
	token, err := manager.GenerateSessionToken("user-123")
	require.NoError(t, err)

	_, err = manager.VerifySessionToken(token + "x")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)

	_, err = manager.VerifySessionToken("not-a-jwt")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifySessionToken_Expired(t *testing.T) {
	now := time.Now()
	claims := gojwt.RegisteredClaims{
		Subject:   "user-123",
		IssuedAt:  gojwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: gojwt.NewNumericDate(now.Add(-time.Hour)),
	}
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = jwt.NewJWTManager(testSecret).VerifySessionToken(expired)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifySessionToken_UnsignedAlgorithmRejected(t *testing.T) {
	claims := gojwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwt.NewJWTManager(testSecret).VerifySessionToken(unsigned)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifySessionToken_MissingSubject(t *testing.T) {
	claims := gojwt.RegisteredClaims{
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = jwt.NewJWTManager(testSecret).VerifySessionToken(token)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}
