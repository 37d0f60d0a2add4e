// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/business-registry/internal/config"
	"github.com/iliyamo/business-registry/internal/handler"
	"github.com/iliyamo/business-registry/internal/middleware"
	"github.com/iliyamo/business-registry/internal/service"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Register and
// login live under /v1/auth and need no session; logout and the
// profile endpoint require a valid bearer token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, auth *service.AuthService) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout, middleware.JWTAuth(auth))

	protected := e.Group("/v1")
	protected.Use(middleware.JWTAuth(auth))
	protected.GET("/me", a.Me)
}

// RegisterBusinesses registers the business and review endpoints.
// Reads are public (with an optional identity and the Redis response
// cache); every mutation requires a valid bearer token.
func RegisterBusinesses(e *echo.Echo, b *handler.BusinessHandler, auth *service.AuthService, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cache := middleware.NewRedisCache(cacheCfg, rdb)

	e.GET("/v1/businesses", b.List, middleware.OptionalJWTAuth(auth), cache)
	e.GET("/v1/businesses/:id", b.Get, middleware.OptionalJWTAuth(auth), cache)

	protected := e.Group("/v1/businesses")
	protected.Use(middleware.JWTAuth(auth))
	protected.POST("", b.Create)
	protected.PUT("/:id", b.Update)
	protected.DELETE("/:id", b.Delete)
	protected.POST("/:id/reviews", b.AddReview)
}
