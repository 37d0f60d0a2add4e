package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/business-registry/internal/model"
	"github.com/iliyamo/business-registry/internal/utils"
)

// UserRepo is the in-memory credential store. The map is keyed by the
// normalized email address. The mutex serializes the check-then-insert
// sequence so the email uniqueness invariant holds under concurrent
// registrations; reads take the shared lock.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]model.User)}
}

// Create hashes the password and inserts a new user. The plaintext is
// never stored. Returns ErrEmailExists when the email is taken.
func (r *UserRepo) Create(email, username, password string, cost int) error {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[email]; ok {
		return ErrEmailExists
	}
	r.users[email] = model.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	return nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[email]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

// Count reports how many users are registered.
func (r *UserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
