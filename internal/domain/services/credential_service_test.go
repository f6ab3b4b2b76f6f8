package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialServiceRoundTrip(t *testing.T) {
	svc := NewCredentialService()

	hash, err := svc.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, svc.CheckPassword("secret123", hash))
	assert.False(t, svc.CheckPassword("wrong", hash))
	assert.False(t, svc.CheckPassword("", hash))
}

func TestCredentialServiceHashesDiffer(t *testing.T) {
	svc := NewCredentialService()

	h1, err := svc.HashPassword("secret123")
	require.NoError(t, err)
	h2, err := svc.HashPassword("secret123")
	require.NoError(t, err)

	// bcrypt salts per call
	assert.NotEqual(t, h1, h2)
}
