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

// AccountHandler bundles HTTP handlers for accounts.
type AccountHandler struct {
	svc service.AccountService
}

// NewAccountHandler creates a handler layer.
func NewAccountHandler(svc service.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// CreateAccountRequest represents an account creation payload.
type CreateAccountRequest struct {
	Name   string `json:"name" validate:"required"`
	PixKey string `json:"pix_key" validate:"required"`
	City   string `json:"city" validate:"required"`
	UserID uint   `json:"user_id" validate:"required"`
}

// UpdateAccountRequest represents an account update payload.
type UpdateAccountRequest struct {
	ID     uint   `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	PixKey string `json:"pix_key" validate:"required"`
	City   string `json:"city" validate:"required"`
}

// AccountResponse decorates an account with HATEOAS-style links.
type AccountResponse struct {
	model.Account
	Links []pagination.Link `json:"_links,omitempty"`
}

func toAccountResponse(a model.Account) AccountResponse {
	return AccountResponse{
		Account: a,
		Links:   pagination.SelfLink(fmt.Sprintf("/api/accounts/%d", a.ID)),
	}
}

func toAccountPage(accounts []model.Account, p pagination.Params, total int64) pagination.Page[AccountResponse] {
	content := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		content = append(content, toAccountResponse(a))
	}
	return pagination.NewPage(content, p, total)
}

// Create godoc
// @Summary Create account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body CreateAccountRequest true "Account payload"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account := &model.Account{
		Name:   req.Name,
		PixKey: req.PixKey,
		City:   req.City,
		UserID: req.UserID,
	}
	created, err := h.svc.Create(c.Request().Context(), account)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toAccountResponse(*created))
}

// Get godoc
// @Summary Get account by id
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} AccountResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	account, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountResponse(*account))
}

// Update godoc
// @Summary Update account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body UpdateAccountRequest true "Account payload"
// @Success 200 {object} AccountResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /accounts [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.Update(c.Request().Context(), &model.Account{
		ID:     req.ID,
		Name:   req.Name,
		PixKey: req.PixKey,
		City:   req.City,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountResponse(*updated))
}

// Delete godoc
// @Summary Delete account
// @Tags accounts
// @Param id path int true "Account ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
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
// @Summary List accounts with pagination
// @Tags accounts
// @Produce json
// @Success 200 {object} pagination.Page[AccountResponse]
// @Security BearerAuth
// @Router /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	p := pagination.FromContext(c, "name")
	accounts, total, err := h.svc.List(c.Request().Context(), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountPage(accounts, p, total))
}

// FindByName godoc
// @Summary Find accounts by name
// @Tags accounts
// @Produce json
// @Param name path string true "Name fragment"
// @Success 200 {object} pagination.Page[AccountResponse]
// @Security BearerAuth
// @Router /accounts/find/name/{name} [get]
func (h *AccountHandler) FindByName(c echo.Context) error {
	p := pagination.FromContext(c, "name")
	accounts, total, err := h.svc.FindByName(c.Request().Context(), c.Param("name"), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountPage(accounts, p, total))
}

// FindByCity godoc
// @Summary Find accounts by city
// @Tags accounts
// @Produce json
// @Param city path string true "City fragment"
// @Success 200 {object} pagination.Page[AccountResponse]
// @Security BearerAuth
// @Router /accounts/find/city/{city} [get]
func (h *AccountHandler) FindByCity(c echo.Context) error {
	p := pagination.FromContext(c, "city")
	accounts, total, err := h.svc.FindByCity(c.Request().Context(), c.Param("city"), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountPage(accounts, p, total))
}

// FindByPixKey godoc
// @Summary Find accounts by Pix key
// @Tags accounts
// @Produce json
// @Param pixKey path string true "Pix key fragment"
// @Success 200 {object} pagination.Page[AccountResponse]
// @Security BearerAuth
// @Router /accounts/find/pixKey/{pixKey} [get]
func (h *AccountHandler) FindByPixKey(c echo.Context) error {
	p := pagination.FromContext(c, "pix_key")
	accounts, total, err := h.svc.FindByPixKey(c.Request().Context(), c.Param("pixKey"), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountPage(accounts, p, total))
}

// FindByUser godoc
// @Summary Find accounts by owning user
// @Tags accounts
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} pagination.Page[AccountResponse]
// @Security BearerAuth
// @Router /accounts/find/user/{userId} [get]
func (h *AccountHandler) FindByUser(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	p := pagination.FromContext(c, "name")
	accounts, total, err := h.svc.FindByUser(c.Request().Context(), uint(userID), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountPage(accounts, p, total))
}
