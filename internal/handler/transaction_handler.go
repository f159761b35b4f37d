package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
	"saldoamigo/internal/service"
)

// TransactionHandler bundles HTTP handlers for transactions.
type TransactionHandler struct {
	svc service.TransactionService
}

// NewTransactionHandler creates a handler layer.
func NewTransactionHandler(svc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// CreateTransactionRequest represents a transaction creation payload. Date is
// optional; when absent the server stamps the current time.
type CreateTransactionRequest struct {
	Value     decimal.Decimal `json:"value" validate:"required"`
	Date      *time.Time      `json:"date"`
	AccountID uint            `json:"account_id" validate:"required"`
	GroupID   uint            `json:"group_id" validate:"required"`
}

// UpdateTransactionRequest represents a transaction update payload.
type UpdateTransactionRequest struct {
	ID        uint            `json:"id" validate:"required"`
	Value     decimal.Decimal `json:"value" validate:"required"`
	AccountID uint            `json:"account_id"`
	GroupID   uint            `json:"group_id"`
}

// TransactionResponse decorates a transaction with HATEOAS-style links.
type TransactionResponse struct {
	model.Transaction
	Links []pagination.Link `json:"_links,omitempty"`
}

func toTransactionResponse(t model.Transaction) TransactionResponse {
	return TransactionResponse{
		Transaction: t,
		Links:       pagination.SelfLink(fmt.Sprintf("/api/transactions/%d", t.ID)),
	}
}

func toTransactionPage(transactions []model.Transaction, p pagination.Params, total int64) pagination.Page[TransactionResponse] {
	content := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		content = append(content, toTransactionResponse(t))
	}
	return pagination.NewPage(content, p, total)
}

// Create godoc
// @Summary Create transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	transaction := &model.Transaction{
		Value:     req.Value,
		AccountID: req.AccountID,
		GroupID:   req.GroupID,
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}
	created, err := h.svc.Create(c.Request().Context(), transaction)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toTransactionResponse(*created))
}

// Get godoc
// @Summary Get transaction by id
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} TransactionResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	transaction, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toTransactionResponse(*transaction))
}

// Update godoc
// @Summary Update transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body UpdateTransactionRequest true "Transaction payload"
// @Success 200 {object} TransactionResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /transactions [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.Update(c.Request().Context(), &model.Transaction{
		ID:        req.ID,
		Value:     req.Value,
		AccountID: req.AccountID,
		GroupID:   req.GroupID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toTransactionResponse(*updated))
}

// Delete godoc
// @Summary Delete transaction
// @Tags transactions
// @Param id path int true "Transaction ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
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
// @Summary List transactions with pagination
// @Tags transactions
// @Produce json
// @Success 200 {object} pagination.Page[TransactionResponse]
// @Security BearerAuth
// @Router /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	p := pagination.FromContext(c, "date")
	transactions, total, err := h.svc.List(c.Request().Context(), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toTransactionPage(transactions, p, total))
}

// FindByDate godoc
// @Summary Find transactions by calendar day
// @Tags transactions
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} pagination.Page[TransactionResponse]
// @Security BearerAuth
// @Router /transactions/find/date/{date} [get]
func (h *TransactionHandler) FindByDate(c echo.Context) error {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	p := pagination.FromContext(c, "date")
	transactions, total, err := h.svc.FindByDate(c.Request().Context(), date, p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toTransactionPage(transactions, p, total))
}

// FindByAccount godoc
// @Summary Find transactions by account
// @Tags transactions
// @Produce json
// @Param accountId path int true "Account ID"
// @Success 200 {object} pagination.Page[TransactionResponse]
// @Security BearerAuth
// @Router /transactions/find/account/{accountId} [get]
func (h *TransactionHandler) FindByAccount(c echo.Context) error {
	accountID, err := strconv.Atoi(c.Param("accountId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}
	p := pagination.FromContext(c, "date")
	transactions, total, err := h.svc.FindByAccount(c.Request().Context(), uint(accountID), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toTransactionPage(transactions, p, total))
}

// FindByGroup godoc
// @Summary Find transactions by group
// @Tags transactions
// @Produce json
// @Param groupId path int true "Group ID"
// @Success 200 {object} pagination.Page[TransactionResponse]
// @Security BearerAuth
// @Router /transactions/find/group/{groupId} [get]
func (h *TransactionHandler) FindByGroup(c echo.Context) error {
	groupID, err := strconv.Atoi(c.Param("groupId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid group id")
	}
	p := pagination.FromContext(c, "date")
	transactions, total, err := h.svc.FindByGroup(c.Request().Context(), uint(groupID), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toTransactionPage(transactions, p, total))
}
