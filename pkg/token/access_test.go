package token

import (
	"arena_backend/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	key := []byte("secret")
	tok, err := GenerateAccessToken(" rAlice ", key, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, key)
	require.NoError(t, err)
	assert.Equal(t, "rAlice", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyTokenRejects(t *testing.T) {
	key := []byte("secret")

	expired, err := GenerateAccessToken("alice", key, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(expired, key)
	assert.Error(t, err)

	valid, err := GenerateAccessToken("alice", key, time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(valid, []byte("other"))
	assert.Error(t, err)

	// Токен без subject не годится для действий игрока
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, model.GamblerClaims{})
	noSubject, err := raw.SignedString(key)
	require.NoError(t, err)
	_, err = VerifyToken(noSubject, key)
	assert.Error(t, err)
}

func TestGenerateAccessTokenEmptyAddress(t *testing.T) {
	_, err := GenerateAccessToken("", []byte("secret"), time.Minute)
	assert.True(t, errors.Is(err, model.ErrInvalidAddress))
}
