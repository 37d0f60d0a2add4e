package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocationRepoRevoke(t *testing.T) {
	r := NewRevocationRepo()
	exp := time.Now().UTC().Add(time.Hour)

	assert.False(t, r.IsRevoked("jti-1"))
	r.Revoke("jti-1", exp)
	assert.True(t, r.IsRevoked("jti-1"))
	assert.False(t, r.IsRevoked("jti-2"))

	// Idempotent: a second revoke is a no-op.
	r.Revoke("jti-1", exp)
	assert.Equal(t, 1, r.Len())
}

func TestRevocationRepoIgnoresEmptyJTI(t *testing.T) {
	r := NewRevocationRepo()
	r.Revoke("", time.Now().UTC().Add(time.Hour))
	assert.Equal(t, 0, r.Len())
}

func TestRevocationRepoPurgeExpired(t *testing.T) {
	r := NewRevocationRepo()
	now := time.Now().UTC()

	r.Revoke("dead", now.Add(-time.Minute))
	r.Revoke("alive", now.Add(time.Hour))

	assert.Equal(t, 1, r.PurgeExpired(now))
	assert.False(t, r.IsRevoked("dead"))
	assert.True(t, r.IsRevoked("alive"))
	assert.Equal(t, 0, r.PurgeExpired(now))
}
