package recommendation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/recommend", h.Recommend)
}

// Recommend accepts a loose JSON object at the request boundary and answers
// with either a complete recommendation or a single error string.
func (h *Handler) Recommend(c echo.Context) error {
	var raw map[string]any
	if err := c.Bind(&raw); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid input: request body must be a JSON object"})
	}

	rec, err := h.svc.Recommend(raw)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid input: %s", verr.Message)})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rec)
}
