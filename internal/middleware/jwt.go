// Package middleware contains reusable HTTP middleware: bearer token
// authentication and the Redis response cache.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-registry/internal/service"
)

// Context keys set by the auth middleware.
const (
	IdentityKey = "identity" // email of the authenticated user
	ClaimsKey   = "claims"   // *jwt.RegisteredClaims of the presented token
)

// bearerToken pulls the raw token out of the Authorization header.
func bearerToken(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

// JWTAuth returns a middleware that requires a valid, non-revoked
// bearer token. Verification is delegated to the auth service so the
// revocation list is consulted on every request. On success the
// subject and claims are stored in the context for handlers.
func JWTAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing bearer token"})
			}
			claims, err := auth.VerifyAccess(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": verifyMessage(err)})
			}
			c.Set(IdentityKey, claims.Subject)
			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// OptionalJWTAuth extracts the identity when a valid bearer token is
// present but lets the request through as a guest otherwise. Used on
// public read endpoints.
func OptionalJWTAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw, ok := bearerToken(c); ok {
				if claims, err := auth.VerifyAccess(raw); err == nil {
					c.Set(IdentityKey, claims.Subject)
					c.Set(ClaimsKey, claims)
				}
			}
			return next(c)
		}
	}
}

// verifyMessage maps a verification failure onto the user-facing
// message. All outcomes are 401; the text distinguishes them.
func verifyMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenRevoked):
		return "token has been revoked"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token has expired"
	default:
		return "invalid token"
	}
}

// Identity returns the authenticated email stored by JWTAuth, or ""
// for guests.
func Identity(c echo.Context) string {
	v, _ := c.Get(IdentityKey).(string)
	return v
}

// Claims returns the token claims stored by JWTAuth, or nil.
func Claims(c echo.Context) *jwt.RegisteredClaims {
	v, _ := c.Get(ClaimsKey).(*jwt.RegisteredClaims)
	return v
}
