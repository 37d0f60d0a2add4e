package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)
	assert.Contains(t, hash, "$")

	// Same password hashes differently thanks to the random salt.
	hash2, err := HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "pw1"))
	assert.False(t, VerifyPassword(hash, "pw2"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	// Attacker-controlled digests must read as a mismatch, never panic
	// or surface an error.
	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$junk"} {
		assert.False(t, VerifyPassword(digest, "pw1"))
	}
}
