package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "userbase/internal/errors"
	"userbase/internal/service"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login godoc
// @Summary Authenticate a user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("invalid request body"))
	}
	if req.Name == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("name and password are required"))
	}

	token, err := h.authService.Login(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, apperrors.NewErrorResponse("failed to login"))
	}

	return c.JSON(http.StatusOK, LoginResponse{AccessToken: token})
}
