package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// the stored secret is never the plaintext
	assert.NotEqual(t, "S3cret!pass", hash)

	assert.NoError(t, verifyPassword(hash, "S3cret!pass"))
	assert.Error(t, verifyPassword(hash, "wrong-password"))
}

func TestVerifyPasswordRejectsEmptyHash(t *testing.T) {
	assert.Error(t, verifyPassword("", "anything"))
	assert.Error(t, verifyPassword("   ", "anything"))
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
