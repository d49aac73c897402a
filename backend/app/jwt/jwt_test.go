package jwtutil

import (
	"errors"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "trackfitnessgoals", ExpMin: 60}

	token, err := s.Sign("8d4f9a9e-0000-4000-8000-000000000001", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "8d4f9a9e-0000-4000-8000-000000000001", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "trackfitnessgoals", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	s := &Signer{Secret: []byte("secret-a"), Issuer: "trackfitnessgoals", ExpMin: 60}
	token, err := s.Sign("id", "alice")
	require.NoError(t, err)

	other := &Signer{Secret: []byte("secret-b"), Issuer: "trackfitnessgoals", ExpMin: 60}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "trackfitnessgoals", ExpMin: -1}
	token, err := s.Sign("id", "alice")
	require.NoError(t, err)

	_, err = s.Parse(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseRejectsGarbage(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "trackfitnessgoals", ExpMin: 60}
	_, err := s.Parse("not-a-token")
	assert.Error(t, err)
}
