package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finadmin/manual_ledger_app/internal/apperrors"
	portssvc "github.com/finadmin/manual_ledger_app/internal/core/ports/services"
	"github.com/finadmin/manual_ledger_app/internal/dto"
	"github.com/finadmin/manual_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// LedgerHandler exposes transaction submission and ledger listing.
type LedgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// SubmitTransaction godoc
// @Summary Record a manual deposit or withdrawal
// @Description Validates the request, mutates the account balance and appends an immutable ledger entry
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.SubmitTransactionRequest true "Transaction request"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation failure with a classified reason"
// @Failure 404 {object} map[string]string "Account disappeared after validation"
// @Failure 502 {object} map[string]string "Persistence write failure, effect not committed"
// @Router /transactions [post]
func (h *LedgerHandler) SubmitTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Transaction rejected", slog.String("reason", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Account not found for transaction", slog.Int64("account_id", req.AccountID))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrPersistenceWrite):
			logger.Error("Transaction not committed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Transaction failed. Please try again."})
		default:
			logger.Error("Failed to submit transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// ListTransactions godoc
// @Summary List the transaction ledger
// @Description Returns ledger entries newest first
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Maximum entries to return" default(50)
// @Success 200 {array} dto.TransactionResponse
// @Router /transactions [get]
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns := h.ledgerService.ListTransactions(c.Request.Context(), params.Limit)
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}
