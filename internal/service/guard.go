package service

import (
	"github.com/iliyamo/business-registry/internal/repository"
	"github.com/iliyamo/business-registry/internal/utils"
)

// Guard decides whether an authenticated identity may mutate a
// resource. Ownership means identity == recorded owner. Destructive
// operations additionally re-verify the account password, so a stolen
// token alone is not enough to delete anything.
type Guard struct {
	users *repository.UserRepo
}

func NewGuard(users *repository.UserRepo) *Guard {
	return &Guard{users: users}
}

// AuthorizeOwner allows the operation iff identity matches the
// resource's recorded owner.
func (g *Guard) AuthorizeOwner(identity, owner string) error {
	if identity != owner {
		return repository.ErrForbidden
	}
	return nil
}

// ConfirmPassword re-verifies the account password. It runs before the
// ownership check on deletes; any failure, including an unknown
// identity, reads as bad credentials.
func (g *Guard) ConfirmPassword(email, password string) error {
	u, err := g.users.GetByEmail(email)
	if err != nil {
		return ErrInvalidCredentials
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return ErrInvalidCredentials
	}
	return nil
}
