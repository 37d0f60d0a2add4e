package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/business-registry/internal/repository"
)

func TestAuthorizeOwner(t *testing.T) {
	g := NewGuard(repository.NewUserRepo())

	assert.NoError(t, g.AuthorizeOwner("alice@x.com", "alice@x.com"))
	assert.ErrorIs(t, g.AuthorizeOwner("bob@x.com", "alice@x.com"), repository.ErrForbidden)
	assert.ErrorIs(t, g.AuthorizeOwner("", "alice@x.com"), repository.ErrForbidden)
}

func TestConfirmPassword(t *testing.T) {
	users := repository.NewUserRepo()
	require.NoError(t, users.Create("alice@x.com", "alice", "pw1", bcrypt.MinCost))
	g := NewGuard(users)

	assert.NoError(t, g.ConfirmPassword("alice@x.com", "pw1"))
	assert.ErrorIs(t, g.ConfirmPassword("alice@x.com", "wrong"), ErrInvalidCredentials)
	// Unknown identity reads the same as a wrong password.
	assert.ErrorIs(t, g.ConfirmPassword("nobody@x.com", "pw1"), ErrInvalidCredentials)
}
