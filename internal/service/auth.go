// Package service holds the request-independent logic: the auth
// service orchestrating register/login/logout, the ownership guard and
// the event publisher. Handlers stay thin and translate service errors
// into HTTP responses.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/business-registry/internal/config"
	"github.com/iliyamo/business-registry/internal/repository"
	"github.com/iliyamo/business-registry/internal/utils"
)

// ErrTokenRevoked is reported by VerifyAccess when the token's jti is
// on the revocation list. It complements the jwt/v5 sentinels
// (malformed, signature invalid, expired) as a verification outcome.
var ErrTokenRevoked = errors.New("token has been revoked")

// ErrInvalidCredentials covers both an unknown email and a wrong
// password so login responses do not reveal which emails are
// registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError lists the request fields that are missing, empty or
// malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid or missing fields: " + strings.Join(e.Fields, ", ")
}

type field struct{ name, value string }

// validateRequired collects the names of fields that are empty or
// whitespace-only.
func validateRequired(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// validEmail performs the minimal shape check: exactly one '@' with
// non-empty local and domain parts.
func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if strings.Count(s, "@") != 1 {
		return false
	}
	i := strings.Index(s, "@")
	return i > 0 && i < len(s)-1
}

// AuthService orchestrates registration, login, logout and token
// verification over the credential store and the revocation list. Each
// call is a complete transaction; no state is carried across requests.
type AuthService struct {
	cfg     config.Config
	users   *repository.UserRepo
	revoked *repository.RevocationRepo
}

func NewAuthService(cfg config.Config, users *repository.UserRepo, revoked *repository.RevocationRepo) *AuthService {
	return &AuthService{cfg: cfg, users: users, revoked: revoked}
}

// Register validates the fields and stores a new user with a hashed
// password. repository.ErrEmailExists surfaces for duplicates.
func (s *AuthService) Register(email, username, password string) error {
	if err := validateRequired(
		field{"email", email},
		field{"username", username},
		field{"password", password},
	); err != nil {
		return err
	}
	if !validEmail(email) {
		return &ValidationError{Fields: []string{"email"}}
	}
	return s.users.Create(email, username, password, s.cfg.BcryptCost)
}

// Login verifies the credentials and mints an access token whose
// subject is the user's email. No token is issued on failure.
func (s *AuthService) Login(email, password string) (utils.AccessToken, error) {
	if err := validateRequired(
		field{"email", email},
		field{"password", password},
	); err != nil {
		return utils.AccessToken{}, err
	}
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return utils.AccessToken{}, ErrInvalidCredentials
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return utils.AccessToken{}, ErrInvalidCredentials
	}
	return utils.NewAccessToken(s.cfg.JWTSecret, u.Email, s.cfg.AccessTTLMin)
}

// Logout blacklists the token's jti until its natural expiry. Logging
// out twice with the same token is a no-op, not an error.
func (s *AuthService) Logout(claims *jwt.RegisteredClaims) {
	// Without an exp claim the entry can never be purged; keep it until
	// process exit rather than reject the logout.
	exp := time.Now().UTC().Add(time.Duration(s.cfg.AccessTTLMin) * time.Minute)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	s.revoked.Revoke(claims.ID, exp)
}

// VerifyAccess parses and validates a raw bearer token, then checks
// the revocation list. On success the subject of the returned claims
// is the authenticated identity.
func (s *AuthService) VerifyAccess(raw string) (*jwt.RegisteredClaims, error) {
	claims, err := utils.ParseAccessToken(s.cfg.JWTSecret, raw)
	if err != nil {
		return nil, err
	}
	if s.revoked.IsRevoked(claims.ID) {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}
