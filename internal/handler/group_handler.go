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

// GroupHandler bundles HTTP handlers for groups.
type GroupHandler struct {
	svc service.GroupService
}

// NewGroupHandler creates a handler layer.
func NewGroupHandler(svc service.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// CreateGroupRequest represents a group creation payload.
type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	UserID      uint   `json:"user_id" validate:"required"`
}

// UpdateGroupRequest represents a group update payload.
type UpdateGroupRequest struct {
	ID          uint   `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// GroupResponse decorates a group with HATEOAS-style links.
type GroupResponse struct {
	model.Group
	Links []pagination.Link `json:"_links,omitempty"`
}

func toGroupResponse(g model.Group) GroupResponse {
	return GroupResponse{
		Group: g,
		Links: pagination.SelfLink(fmt.Sprintf("/api/groups/%d", g.ID)),
	}
}

func toGroupPage(groups []model.Group, p pagination.Params, total int64) pagination.Page[GroupResponse] {
	content := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		content = append(content, toGroupResponse(g))
	}
	return pagination.NewPage(content, p, total)
}

// Create godoc
// @Summary Create group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body CreateGroupRequest true "Group payload"
// @Success 201 {object} GroupResponse
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) Create(c echo.Context) error {
	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group := &model.Group{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
	}
	created, err := h.svc.Create(c.Request().Context(), group)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toGroupResponse(*created))
}

// Get godoc
// @Summary Get group by id
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} GroupResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	group, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toGroupResponse(*group))
}

// Update godoc
// @Summary Update group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body UpdateGroupRequest true "Group payload"
// @Success 200 {object} GroupResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /groups [put]
func (h *GroupHandler) Update(c echo.Context) error {
	var req UpdateGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.Update(c.Request().Context(), &model.Group{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toGroupResponse(*updated))
}

// Delete godoc
// @Summary Delete group
// @Tags groups
// @Param id path int true "Group ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *GroupHandler) Delete(c echo.Context) error {
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
// @Summary List groups with pagination
// @Tags groups
// @Produce json
// @Success 200 {object} pagination.Page[GroupResponse]
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) List(c echo.Context) error {
	p := pagination.FromContext(c, "name")
	groups, total, err := h.svc.List(c.Request().Context(), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toGroupPage(groups, p, total))
}

// FindByName godoc
// @Summary Find groups by name
// @Tags groups
// @Produce json
// @Param name path string true "Name fragment"
// @Success 200 {object} pagination.Page[GroupResponse]
// @Security BearerAuth
// @Router /groups/find/name/{name} [get]
func (h *GroupHandler) FindByName(c echo.Context) error {
	p := pagination.FromContext(c, "name")
	groups, total, err := h.svc.FindByName(c.Request().Context(), c.Param("name"), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toGroupPage(groups, p, total))
}

// FindByUser godoc
// @Summary Find groups by owning user
// @Tags groups
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} pagination.Page[GroupResponse]
// @Security BearerAuth
// @Router /groups/find/user/{userId} [get]
func (h *GroupHandler) FindByUser(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	p := pagination.FromContext(c, "name")
	groups, total, err := h.svc.FindByUser(c.Request().Context(), uint(userID), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toGroupPage(groups, p, total))
}
