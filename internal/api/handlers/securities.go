package handlers

import (
	"net/http"

	"github.com/patrimonio/wealth-backend/internal/api/request"
	"github.com/patrimonio/wealth-backend/internal/api/response"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/service"
	"github.com/patrimonio/wealth-backend/internal/validation"
)

// SecurityHandler handles HTTP requests for security endpoints.
type SecurityHandler struct {
	securityService *service.SecurityService
	quoteService    *service.QuoteService
}

// NewSecurityHandler creates a new SecurityHandler with the provided service dependencies.
func NewSecurityHandler(securityService *service.SecurityService, quoteService *service.QuoteService) *SecurityHandler {
	return &SecurityHandler{
		securityService: securityService,
		quoteService:    quoteService,
	}
}

// ListSecurities handles GET requests to retrieve all securities.
//
// Endpoint: GET /api/securities
// Response: 200 OK with array of Security
func (h *SecurityHandler) ListSecurities(w http.ResponseWriter, _ *http.Request) {
	securities, err := h.securityService.GetSecurities()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve securities", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, securities)
}

// CreateSecurity handles POST requests to register a new security.
// FX pairs register with security type "currency" and a ticker of the
// form target+source, e.g. "EURUSD".
//
// Endpoint: POST /api/securities
// Request Body: CreateSecurityRequest
// Response: 201 Created with Security
// Error: 400 Bad Request if validation fails
func (h *SecurityHandler) CreateSecurity(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateSecurityRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateSecurity(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	security, err := h.securityService.CreateSecurity(model.Security{
		Name:         req.Name,
		Ticker:       req.Ticker,
		Currency:     req.Currency,
		SecurityType: req.SecurityType,
		CurrentPrice: req.CurrentPrice,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create security", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, security)
}

// RefreshQuotes handles POST requests to refresh all security prices
// from the quote provider. Individual symbol failures are tolerated
// and reported in the counts.
//
// Endpoint: POST /api/securities/refresh
// Response: 200 OK with RefreshResult
// Error: 500 Internal Server Error if the refresh pass cannot run
func (h *SecurityHandler) RefreshQuotes(w http.ResponseWriter, r *http.Request) {
	result, err := h.quoteService.RefreshQuotes(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh quotes", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
