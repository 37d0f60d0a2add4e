package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessToken represents a signed JWT identity credential along with
// the metadata callers need after minting: the jti used for revocation
// and the UTC expiry. Access tokens are self-contained; nothing is
// stored server-side until the token is revoked at logout.
type AccessToken struct {
	Token string    // the serialized JWT string
	JTI   string    // unique token identifier carried in the jti claim
	Exp   time.Time // the UTC expiration time
}

// ErrUnexpectedSigningMethod is returned from the parse callback when a
// token claims an algorithm other than HMAC.
var ErrUnexpectedSigningMethod = errors.New("unexpected signing method")

// NewAccessToken builds and signs an HS256 JWT for a subject (the
// user's email). Claims are the registered set: sub, a fresh jti,
// iat, and exp = iat + TTL.
func NewAccessToken(secret, subject string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	jti := uuid.NewString()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, JTI: jti, Exp: exp}, nil
}

// ParseAccessToken validates the signature and time claims of a raw
// token and returns its claims. Failures carry the jwt library's
// sentinel errors (jwt.ErrTokenMalformed, jwt.ErrTokenSignatureInvalid,
// jwt.ErrTokenExpired); callers classify with errors.Is. The
// revocation check happens a layer up since it needs the blacklist.
func ParseAccessToken(secret, raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
