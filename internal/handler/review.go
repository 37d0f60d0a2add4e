package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-registry/internal/middleware"
	"github.com/iliyamo/business-registry/internal/queue"
	"github.com/iliyamo/business-registry/internal/service"
)

// AddReview appends a review to a business. The owner may not review
// their own business.
func (h *BusinessHandler) AddReview(c echo.Context) error {
	id, err := businessID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "business not found"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if resp := requireFields(c, map[string]string{"review": req.Review}); resp != nil {
		return resp
	}
	identity := middleware.Identity(c)

	b, err := h.Businesses.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": fmt.Sprintf("the business with id %d is not available", id),
		})
	}
	if identity == b.CreatedBy {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "the operation is forbidden for own business"})
	}
	if _, err := h.Businesses.AddReview(id, squeeze(req.Review)); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": fmt.Sprintf("the business with id %d is not available", id),
		})
	}
	if h.Events {
		_ = service.PublishEvent(c.Request().Context(),
			service.NewEvent(queue.KindReviewAdded, identity, b.ID, b.Name))
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("review for business with id %d created", id),
	})
}
