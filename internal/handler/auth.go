package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-registry/internal/middleware"
	"github.com/iliyamo/business-registry/internal/queue"
	"github.com/iliyamo/business-registry/internal/repository"
	"github.com/iliyamo/business-registry/internal/service"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Auth   *service.AuthService
	Users  *repository.UserRepo
	Events bool // publish domain events when true
}

func NewAuthHandler(auth *service.AuthService, users *repository.UserRepo, events bool) *AuthHandler {
	return &AuthHandler{Auth: auth, Users: users, Events: events}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register: create a user account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := h.Auth.Register(req.Email, req.Username, req.Password); err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": verr.Error()})
		case errors.Is(err, repository.ErrEmailExists):
			return c.JSON(http.StatusConflict, echo.Map{"message": "user already exists, please login"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create user failed"})
		}
	}
	if h.Events {
		_ = service.PublishEvent(c.Request().Context(),
			service.NewEvent(queue.KindUserRegistered, req.Email, 0, ""))
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "account created successfully"})
}

// Login: verify credentials and return an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	tok, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": verr.Error()})
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid email or password"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "login failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"message":      "you logged in successfully",
	})
}

// Logout: blacklist the presented token's jti (protected; middleware
// already validated the token). Idempotent by design.
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing bearer token"})
	}
	h.Auth.Logout(claims)
	return c.JSON(http.StatusOK, echo.Map{"message": "successfully logged out"})
}

// Me: return the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	u, err := h.Users.GetByEmail(middleware.Identity(c))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "user is not registered"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"email":    u.Email,
		"username": u.Username,
	})
}
