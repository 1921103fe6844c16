package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/patrimonio/wealth-backend/internal/api/request"
	"github.com/patrimonio/wealth-backend/internal/api/response"
	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/engine"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/repository"
	"github.com/patrimonio/wealth-backend/internal/service"
	"github.com/patrimonio/wealth-backend/internal/validation"
)

// TransactionHandler handles HTTP requests for the cashflow ledger.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions handles GET requests to retrieve transactions in
// chronological order.
//
// Endpoint: GET /api/transactions?assetId=...&startDate=...&endDate=...
// Response: 200 OK with array of Transaction
// Error: 400 Bad Request if a filter value is malformed
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transactions, err := h.transactionService.GetTransactions(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve transactions", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// Ledger handles GET requests for the running-balance view. Balances
// accumulate in date order regardless of the requested display sort.
//
// Endpoint: GET /api/transactions/ledger?sortBy=amount&order=desc
// Response: 200 OK with array of BalanceEntry
// Error: 400 Bad Request if a filter value is malformed
func (h *TransactionHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	sortBy := engine.SortField(r.URL.Query().Get("sortBy"))
	descending := r.URL.Query().Get("order") == "desc"

	entries, err := h.transactionService.GetLedger(filter, sortBy, descending)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to compute ledger", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}

// CreateTransaction handles POST requests to create a new ledger entry.
//
// Endpoint: POST /api/transactions
// Request Body: CreateTransactionRequest
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the linked asset does not exist
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	date, _ := time.Parse(repository.DateFormat, req.Date)
	tx := model.Transaction{
		Date:              date,
		Description:       req.Description,
		Category:          req.Category,
		Amount:            req.Amount,
		AssetID:           req.AssetID,
		AffectsAssetValue: true,
	}
	if req.AffectsAssetValue != nil {
		tx.AffectsAssetValue = *req.AffectsAssetValue
	}

	transaction, err := h.transactionService.CreateTransaction(tx)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// DeleteTransaction handles DELETE requests to remove a ledger entry.
//
// Endpoint: DELETE /api/transactions/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the transaction does not exist
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

func transactionFilterFromQuery(r *http.Request) (model.TransactionFilter, error) {
	var filter model.TransactionFilter

	if assetID := r.URL.Query().Get("assetId"); assetID != "" {
		if err := validation.ValidateUUID(assetID); err != nil {
			return filter, err
		}
		filter.AssetID = assetID
	}

	start, end, err := validation.ValidateDateRange(r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		return filter, err
	}
	if start != nil {
		filter.StartDate = *start
	}
	if end != nil {
		filter.EndDate = *end
	}

	return filter, nil
}
