package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/domain/port/persistence"
	transactionUseCase "github.com/amirhossein-jamali/family-ledger/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *transactionUseCase.Service
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionService *transactionUseCase.Service, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// Create handles the POST /transactions endpoint
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondError(c, errs.NewValidationError(map[string]string{
			"amount": "must be a decimal number",
		}))
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)
	transaction, err := h.transactionService.Create(c.Request.Context(), transactionUseCase.CreateInput{
		Type:         req.Type,
		Amount:       amount,
		Category:     req.Category,
		Description:  req.Description,
		Date:         date,
		IsFamilyBill: req.IsFamilyBill,
		PayerID:      req.PayerID,
		PayerName:    req.PayerName,
	}, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage("Transaction recorded", dto.TransactionToResponse(transaction)))
}

// List handles the GET /transactions endpoint. The optional isFamilyBill
// query parameter narrows the listing: true for family bills only, false
// for personal only, absent for both.
func (h *TransactionHandler) List(c *gin.Context) {
	filter := persistence.FilterNone
	switch c.Query("isFamilyBill") {
	case "":
	case "true":
		filter = persistence.FilterFamily
	case "false":
		filter = persistence.FilterPersonal
	default:
		respondError(c, errs.NewValidationError(map[string]string{
			"isFamilyBill": "must be true or false",
		}))
		return
	}

	userID := middleware.CurrentUserID(c)
	transactions, err := h.transactionService.FindAll(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.TransactionsToResponse(transactions)))
}

// Summary handles the GET /transactions/summary endpoint
func (h *TransactionHandler) Summary(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	summary, err := h.transactionService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(summary))
}

// Get handles the GET /transactions/:id endpoint
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := h.transactionID(c)
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	transaction, err := h.transactionService.FindOne(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.TransactionToResponse(transaction)))
}

// Patch handles the PATCH /transactions/:id endpoint
func (h *TransactionHandler) Patch(c *gin.Context) {
	id, ok := h.transactionID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := transactionUseCase.UpdatePatch{
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		PayerName:   req.PayerName,
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			respondError(c, errs.NewValidationError(map[string]string{
				"amount": "must be a decimal number",
			}))
			return
		}
		patch.Amount = &amount
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			respondError(c, err)
			return
		}
		patch.Date = &date
	}

	userID := middleware.CurrentUserID(c)
	transaction, err := h.transactionService.Update(c.Request.Context(), id, patch, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("Transaction updated", dto.TransactionToResponse(transaction)))
}

// Delete handles the DELETE /transactions/:id endpoint
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := h.transactionID(c)
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.transactionService.Remove(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Transaction deleted"})
}

// transactionID parses the :id path parameter, writing a 400 on failure
func (h *TransactionHandler) transactionID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, errs.NewValidationError(map[string]string{
			"id": "must be a positive integer",
		}))
		return 0, false
	}
	return id, true
}
