package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-registry/internal/middleware"
	"github.com/iliyamo/business-registry/internal/model"
	"github.com/iliyamo/business-registry/internal/queue"
	"github.com/iliyamo/business-registry/internal/repository"
	"github.com/iliyamo/business-registry/internal/service"
)

// BusinessHandler bundles dependencies for the business endpoints.
type BusinessHandler struct {
	Businesses *repository.BusinessRepo
	Guard      *service.Guard
	Events     bool // publish domain events when true
}

func NewBusinessHandler(b *repository.BusinessRepo, g *service.Guard, events bool) *BusinessHandler {
	return &BusinessHandler{Businesses: b, Guard: g, Events: events}
}

// ----- DTOs -----

type businessReq struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
}
type deleteReq struct {
	Password string `json:"password"`
}
type reviewReq struct {
	Review string `json:"review"`
}

type businessResp struct {
	ID        uint64   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Location  string   `json:"location"`
	CreatedBy string   `json:"created_by"`
	Reviews   []string `json:"reviews"`
}

func toBusinessResp(b model.Business) businessResp {
	reviews := b.Reviews
	if reviews == nil {
		reviews = []string{}
	}
	return businessResp{
		ID:        b.ID,
		Name:      b.Name,
		Category:  b.Category,
		Location:  b.Location,
		CreatedBy: b.CreatedBy,
		Reviews:   reviews,
	}
}

// squeeze trims a field and collapses internal runs of whitespace so
// "Acme   Corp " and "Acme Corp" are the same name.
func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// requireFields returns the 400 response for empty fields, or nil.
func requireFields(c echo.Context, fields map[string]string) error {
	var missing []string
	for _, name := range []string{"name", "category", "location", "password", "review"} {
		v, ok := fields[name]
		if ok && strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "invalid or missing fields: " + strings.Join(missing, ", "),
		})
	}
	return nil
}

// businessID parses the :id path parameter.
func businessID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// Create registers a new business owned by the authenticated user.
func (h *BusinessHandler) Create(c echo.Context) error {
	var req businessReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if resp := requireFields(c, map[string]string{
		"name": req.Name, "category": req.Category, "location": req.Location,
	}); resp != nil {
		return resp
	}
	identity := middleware.Identity(c)

	b, err := h.Businesses.Create(squeeze(req.Name), squeeze(req.Category), squeeze(req.Location), identity)
	if err != nil {
		if errors.Is(err, repository.ErrNameExists) {
			return c.JSON(http.StatusConflict, echo.Map{
				"message": fmt.Sprintf("business with name %s already exists", squeeze(req.Name)),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create business failed"})
	}
	if h.Events {
		_ = service.PublishEvent(c.Request().Context(),
			service.NewEvent(queue.KindBusinessCreated, identity, b.ID, b.Name))
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  fmt.Sprintf("business with name %s created", b.Name),
		"business": toBusinessResp(b),
	})
}

// List returns all businesses, optionally filtered by ?category=.
func (h *BusinessHandler) List(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	items := h.Businesses.List(category)
	out := make([]businessResp, 0, len(items))
	for _, b := range items {
		out = append(out, toBusinessResp(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"businesses": out})
}

// Get returns a single business by id.
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := businessID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "business not found"})
	}
	b, err := h.Businesses.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": fmt.Sprintf("the business with id %d is not available", id),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"business": toBusinessResp(b)})
}

// Update replaces the mutable fields of a business. Only the creator
// may update.
func (h *BusinessHandler) Update(c echo.Context) error {
	id, err := businessID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "business not found"})
	}
	var req businessReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if resp := requireFields(c, map[string]string{
		"name": req.Name, "category": req.Category, "location": req.Location,
	}); resp != nil {
		return resp
	}

	b, err := h.Businesses.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": fmt.Sprintf("the business with id %d is not available", id),
		})
	}
	if err := h.Guard.AuthorizeOwner(middleware.Identity(c), b.CreatedBy); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "the operation is forbidden for this business"})
	}

	updated, err := h.Businesses.Update(id, squeeze(req.Name), squeeze(req.Category), squeeze(req.Location))
	switch {
	case errors.Is(err, repository.ErrNameExists):
		return c.JSON(http.StatusConflict, echo.Map{
			"message": fmt.Sprintf("business with name %s already exists", squeeze(req.Name)),
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": fmt.Sprintf("the business with id %d is not available", id),
		})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update business failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "business updated successfully",
		"business": toBusinessResp(updated),
	})
}

// Delete removes a business. The creator must re-confirm their account
// password; the password check runs before the ownership check so a
// wrong password always reads as 401.
func (h *BusinessHandler) Delete(c echo.Context) error {
	id, err := businessID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "business not found"})
	}
	var req deleteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if resp := requireFields(c, map[string]string{"password": req.Password}); resp != nil {
		return resp
	}
	identity := middleware.Identity(c)

	if err := h.Guard.ConfirmPassword(identity, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "enter correct password to delete"})
	}
	b, err := h.Businesses.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": fmt.Sprintf("the business with id %d is not available", id),
		})
	}
	if err := h.Guard.AuthorizeOwner(identity, b.CreatedBy); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "the operation is forbidden for this business"})
	}
	if err := h.Businesses.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": fmt.Sprintf("the business with id %d is not available", id),
		})
	}
	if h.Events {
		_ = service.PublishEvent(c.Request().Context(),
			service.NewEvent(queue.KindBusinessDeleted, identity, id, b.Name))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("business with id %d deleted", id),
	})
}
