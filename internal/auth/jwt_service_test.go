package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := service.GenerateAccessToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)

	subject, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, userID, subject)

	// valid for exactly 24h from issuance
	assert.WithinDuration(t,
		claims.IssuedAt.Add(AccessTokenExpiry),
		claims.ExpiresAt.Time,
		time.Second)
}

func TestJWTService_RefreshTokenHasID(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	tokenID, token, err := service.GenerateRefreshToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, claims.ID)
	assert.WithinDuration(t,
		claims.IssuedAt.Add(RefreshTokenExpiry),
		claims.ExpiresAt.Time,
		time.Second)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	userID := uuid.New()

	token, err := NewJWTService("secret-a").GenerateAccessToken(userID)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret")

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := service.ValidateToken(tokenString)
		assert.Error(t, err, "token %q", tokenString)
	}
}

func TestJWTService_ExpiredTokenIsDistinguishable(t *testing.T) {
	secret := "test-secret"
	service := NewJWTService(secret)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = service.ValidateToken(expired)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}
