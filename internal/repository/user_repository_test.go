package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/business-registry/internal/utils"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	r := NewUserRepo()

	require.NoError(t, r.Create("Alice@X.com", "alice", "pw1", bcrypt.MinCost))

	u, err := r.GetByEmail("alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", u.Email) // normalized on insert
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "pw1", u.PasswordHash)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "pw1"))

	// Lookup is case-insensitive via normalization.
	_, err = r.GetByEmail("ALICE@x.com")
	require.NoError(t, err)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	r := NewUserRepo()

	require.NoError(t, r.Create("alice@x.com", "alice", "pw1", bcrypt.MinCost))
	err := r.Create("alice@x.com", "other", "pw2", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Equal(t, 1, r.Count())
}

func TestUserRepoGetMissing(t *testing.T) {
	r := NewUserRepo()
	_, err := r.GetByEmail("nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
