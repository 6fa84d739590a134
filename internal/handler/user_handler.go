package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "userbase/internal/errors"
	"userbase/internal/service"
)

// UserHandler bundles the user CRUD endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer over the user service.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a user creation request.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UpdateUserRequest represents a partial user update. Absent and empty
// fields mean "leave unchanged"; at least one must be present.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// CreateUserResponse carries the id assigned by the store.
type CreateUserResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// StatusResponse is the generic success payload for mutations.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CreateUser godoc
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User payload"
// @Success 201 {object} CreateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("invalid request body"))
	}
	if req.Name == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("name and password are required"))
	}

	id, err := h.svc.CreateUser(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreateUserResponse{
		Status:  "ok",
		Message: "user created successfully",
		ID:      id,
	})
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.UserView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("invalid id"))
	}

	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a user's name and/or password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("invalid id"))
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("invalid request body"))
	}

	if err := h.svc.UpdateUser(c.Request().Context(), id, normalize(req.Name), normalize(req.Password)); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: "ok", Message: "user updated successfully"})
}

// DeleteUser godoc
// @Summary Delete a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("invalid id"))
	}

	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: "ok", Message: "user deleted successfully"})
}

// fail maps a service error onto the HTTP taxonomy. Store and unexpected
// failures collapse into an opaque 500.
func (h *UserHandler) fail(c echo.Context, err error) error {
	status := apperrors.StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	return c.JSON(status, apperrors.NewErrorResponse(msg))
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// normalize treats an empty string the same as an absent field.
func normalize(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
