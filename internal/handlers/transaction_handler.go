package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bolsillo/internal/analysis"
	apperrors "bolsillo/internal/errors"
	"bolsillo/internal/models"
	"bolsillo/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Kind          models.TransactionKind `json:"kind" binding:"required,transaction_kind"`
	AmountCents   int64                  `json:"amount_cents" binding:"required,gt=0"`
	Category      string                 `json:"category" binding:"required,max=100"`
	Description   string                 `json:"description" binding:"max=500"`
	OccurredAt    string                 `json:"occurred_at" binding:"required"`
	PaymentMethod string                 `json:"payment_method" binding:"omitempty,payment_method"`
	Location      string                 `json:"location" binding:"max=200"`
	ReceiptURL    string                 `json:"receipt_url"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a new income or expense transaction and bump its category usage counter
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input (the rejected payload is echoed back)"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithRejectedPayload(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()), req)
		return
	}

	occurredAt, err := parseFlexibleTime(req.OccurredAt)
	if err != nil {
		respondWithRejectedPayload(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()), req)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(services.CreateTransactionFields{
		Kind:          req.Kind,
		AmountCents:   req.AmountCents,
		Category:      req.Category,
		Description:   req.Description,
		OccurredAt:    occurredAt,
		PaymentMethod: req.PaymentMethod,
		Location:      req.Location,
		ReceiptURL:    req.ReceiptURL,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactions handles the retrieval of transactions
// @Summary     List transactions
// @Description Get transactions ordered newest first, optionally limited to a trailing window
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       filter query string false "Time window (all, week, month, year; default all)"
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	window, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetSummary handles the retrieval of the derived financial summary
// @Summary     Get financial summary
// @Description Compute income/expense totals, balance, and health status over the selected window
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       filter query string false "Time window (all, week, month, year; default all)"
// @Success     200 {object} analysis.FinancialSummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	window, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": analysis.Summarize(transactions)})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

func parseWindow(c *gin.Context) (services.ListWindow, error) {
	var q struct {
		Filter string `form:"filter" binding:"omitempty,report_filter"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		return "", apperrors.ErrInvalidFilter
	}
	if q.Filter == "" {
		return services.WindowAll, nil
	}
	return services.ListWindow(q.Filter), nil
}
