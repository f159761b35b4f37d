package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
	"saldoamigo/internal/service"
)

// UserHandler bundles HTTP handlers for user administration.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a user creation payload.
type CreateUserRequest struct {
	Username string     `json:"username" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Phone    string     `json:"phone"`
	Password string     `json:"password" validate:"required,min=6"`
	Role     model.Role `json:"role" validate:"required,oneof=ADMIN USER"`
}

// UpdateUserRequest represents a user update payload. Password is optional;
// when present the stored hash is replaced with a hash of the new value.
type UpdateUserRequest struct {
	ID       uint       `json:"id" validate:"required"`
	Username string     `json:"username" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Phone    string     `json:"phone"`
	Password string     `json:"password"`
	Role     model.Role `json:"role" validate:"omitempty,oneof=ADMIN USER"`
}

// UserResponse decorates a user with HATEOAS-style links.
type UserResponse struct {
	model.User
	Links []pagination.Link `json:"_links,omitempty"`
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		User:  u,
		Links: pagination.SelfLink(fmt.Sprintf("/api/users/%d", u.ID)),
	}
}

func toUserPage(users []model.User, p pagination.Params, total int64) pagination.Page[UserResponse] {
	content := make([]UserResponse, 0, len(users))
	for _, u := range users {
		content = append(content, toUserResponse(u))
	}
	return pagination.NewPage(content, p, total)
}

// Create godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
	}
	created, err := h.svc.Create(c.Request().Context(), user, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(*created))
}

// Get godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	user, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(*user))
}

// Update godoc
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param user body UpdateUserRequest true "User payload"
// @Success 200 {object} UserResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.Update(c.Request().Context(), service.UpdateUserInput{
		ID:       req.ID,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(*updated))
}

// Delete godoc
// @Summary Delete user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List godoc
// @Summary List users with pagination
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param direction query string false "Sort direction (asc or desc)"
// @Success 200 {object} pagination.Page[UserResponse]
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	p := pagination.FromContext(c, "username")
	users, total, err := h.svc.List(c.Request().Context(), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toUserPage(users, p, total))
}

// FindByUsername godoc
// @Summary Find users by username prefix
// @Tags users
// @Produce json
// @Param username path string true "Username prefix"
// @Success 200 {object} pagination.Page[UserResponse]
// @Security BearerAuth
// @Router /users/find/username/{username} [get]
func (h *UserHandler) FindByUsername(c echo.Context) error {
	p := pagination.FromContext(c, "username")
	users, total, err := h.svc.FindByUsername(c.Request().Context(), c.Param("username"), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toUserPage(users, p, total))
}
