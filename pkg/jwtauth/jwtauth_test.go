package jwtauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	manager := NewManager("test-secret", 30*time.Minute)

	token, err := manager.Generate(42, "client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "client", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestParse_WrongSecret(t *testing.T) {
	manager := NewManager("test-secret", 30*time.Minute)
	other := NewManager("other-secret", 30*time.Minute)

	token, err := manager.Generate(42, "client")
	require.NoError(t, err)

	_, err = other.Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.Generate(42, "client")
	require.NoError(t, err)

	_, err = manager.Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	manager := NewManager("test-secret", 30*time.Minute)

	_, err := manager.Parse("not.a.token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTTL(t *testing.T) {
	manager := NewManager("test-secret", 15*time.Minute)

	assert.Equal(t, 15*time.Minute, manager.TTL())
}
