package repository

import (
	"sync"
	"time"
)

// RevocationRepo tracks the jtis of tokens invalidated before their
// natural expiry (the logout blacklist). Each entry records the
// token's expiry so PurgeExpired can drop it once the token would have
// died on its own, keeping the set bounded by the number of live
// tokens.
type RevocationRepo struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewRevocationRepo() *RevocationRepo {
	return &RevocationRepo{revoked: make(map[string]time.Time)}
}

// Revoke blacklists a jti. Revoking the same jti twice is a no-op.
func (r *RevocationRepo) Revoke(jti string, expiresAt time.Time) {
	if jti == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.revoked[jti]; ok {
		return
	}
	r.revoked[jti] = expiresAt
}

// IsRevoked reports whether the jti is on the blacklist.
func (r *RevocationRepo) IsRevoked(jti string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.revoked[jti]
	return ok
}

// PurgeExpired removes entries whose token expiry has passed and
// returns how many were dropped. An expired token is rejected by
// signature/expiry validation anyway, so its blacklist entry is dead
// weight.
func (r *RevocationRepo) PurgeExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for jti, exp := range r.revoked {
		if now.After(exp) {
			delete(r.revoked, jti)
			n++
		}
	}
	return n
}

// Len reports the number of blacklisted jtis.
func (r *RevocationRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.revoked)
}
