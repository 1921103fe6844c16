package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patrimonio/wealth-backend/internal/api/request"
	"github.com/patrimonio/wealth-backend/internal/api/response"
	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/service"
	"github.com/patrimonio/wealth-backend/internal/validation"
)

// HoldingHandler handles HTTP requests for market holding endpoints.
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// HoldingsPerAsset handles GET requests to retrieve the holdings of an asset.
//
// Endpoint: GET /api/assets/{uuid}/holdings
// Response: 200 OK with array of MarketHolding
// Error: 404 Not Found if the asset does not exist
func (h *HoldingHandler) HoldingsPerAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	holdings, err := h.holdingService.GetHoldingsForAsset(assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve holdings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// CreateHolding handles POST requests to create a new holding under a
// Markets asset.
//
// Endpoint: POST /api/holdings
// Request Body: CreateHoldingRequest
// Response: 201 Created with MarketHolding
// Error: 400 Bad Request if validation fails or the asset is not a Markets asset
// Error: 404 Not Found if the owning asset does not exist
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.CreateHolding(model.MarketHolding{
		AssetID:      req.AssetID,
		Name:         req.Name,
		SecurityID:   req.SecurityID,
		Quantity:     req.Quantity,
		Currency:     req.Currency,
		CurrentValue: req.CurrentValue,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAssetNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrHoldingOnNonMarketsAsset):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrHoldingOnNonMarketsAsset.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create holding", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, holding)
}

// UpdateHolding handles PUT requests to update an existing holding.
//
// Endpoint: PUT /api/holdings/{uuid}
// Request Body: UpdateHoldingRequest (all fields optional)
// Response: 200 OK with updated MarketHolding
// Error: 404 Not Found if the holding does not exist
func (h *HoldingHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.UpdateHolding(holdingID, func(m *model.MarketHolding) {
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.SecurityID != nil {
			if *req.SecurityID == "" {
				m.SecurityID = nil
			} else {
				m.SecurityID = req.SecurityID
			}
		}
		if req.Quantity != nil {
			m.Quantity = *req.Quantity
		}
		if req.Currency != nil {
			m.Currency = *req.Currency
		}
		if req.CurrentValue != nil {
			m.CurrentValue = req.CurrentValue
		}
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// DeleteHolding handles DELETE requests to remove a holding.
//
// Endpoint: DELETE /api/holdings/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the holding does not exist
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	if err := h.holdingService.DeleteHolding(holdingID); err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
