package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "userbase/internal/errors"
	"userbase/internal/repository"
)

// HealthHandler reports whether the API and its store are operational.
type HealthHandler struct {
	repo repository.UserRepository
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(repo repository.UserRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	if err := h.repo.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError,
			apperrors.NewErrorResponse("API operational, but the database is unreachable"))
	}
	return c.JSON(http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: "API and database are operational",
	})
}
