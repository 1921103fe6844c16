package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/patrimonio/wealth-backend/internal/api/request"
	"github.com/patrimonio/wealth-backend/internal/api/response"
	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/repository"
	"github.com/patrimonio/wealth-backend/internal/service"
	"github.com/patrimonio/wealth-backend/internal/validation"
)

// AssetHandler handles HTTP requests for asset endpoints.
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler with the provided service dependency.
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// ListAssets handles GET requests to retrieve assets.
//
// Endpoint: GET /api/assets?includeRecovery=true&category=Markets
// Response: 200 OK with array of Asset
// Error: 400 Bad Request if the category filter is unknown
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	filter := model.AssetFilter{
		IncludeRecovery: r.URL.Query().Get("includeRecovery") == "true",
	}
	if category := r.URL.Query().Get("category"); category != "" {
		if !model.ValidCategory(model.AssetCategory(category)) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCategory.Error(), category)
			return
		}
		filter.Category = model.AssetCategory(category)
	}

	assets, err := h.assetService.GetAssets(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve assets", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, assets)
}

// GetAsset handles GET requests to retrieve a single asset by ID.
//
// Endpoint: GET /api/assets/{uuid}
// Response: 200 OK with Asset
// Error: 404 Not Found if the asset does not exist
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	asset, err := h.assetService.GetAsset(assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// CreateAsset handles POST requests to create a new asset.
//
// Endpoint: POST /api/assets
// Request Body: CreateAssetRequest
// Response: 201 Created with Asset
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAsset(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	asset, err := h.assetService.CreateAsset(assetFromCreateRequest(req))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, asset)
}

// UpdateAsset handles PUT requests to update an existing asset. All
// fields are optional; absent fields keep their stored values.
//
// Endpoint: PUT /api/assets/{uuid}
// Request Body: UpdateAssetRequest
// Response: 200 OK with updated Asset
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the asset does not exist
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateAsset(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	asset, err := h.assetService.UpdateAsset(assetID, func(a *model.Asset) {
		applyAssetUpdate(a, req)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// DeleteAsset handles DELETE requests to remove an asset.
//
// Endpoint: DELETE /api/assets/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the asset does not exist
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	if err := h.assetService.DeleteAsset(assetID); err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

func assetFromCreateRequest(req request.CreateAssetRequest) model.Asset {
	a := model.Asset{
		Name:                 req.Name,
		Category:             model.AssetCategory(req.Category),
		Subcategory:          req.Subcategory,
		Status:               model.AssetStatus(req.Status),
		Currency:             req.Currency,
		CurrentValue:         req.CurrentValue,
		PurchasePrice:        req.PurchasePrice,
		ProfitLossValue:      req.ProfitLossValue,
		AppreciationType:     req.AppreciationType,
		AnnualRatePercent:    req.AnnualRatePercent,
		ConsiderAppreciation: true,
		Notes:                req.Notes,
	}
	if req.ConsiderAppreciation != nil {
		a.ConsiderAppreciation = *req.ConsiderAppreciation
	}
	if req.PurchaseDate != nil {
		// Format already validated.
		d, _ := time.Parse(repository.DateFormat, *req.PurchaseDate)
		a.PurchaseDate = &d
	}
	return a
}

func applyAssetUpdate(a *model.Asset, req request.UpdateAssetRequest) {
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Category != nil {
		a.Category = model.AssetCategory(*req.Category)
	}
	if req.Subcategory != nil {
		a.Subcategory = req.Subcategory
	}
	if req.Status != nil {
		a.Status = model.AssetStatus(*req.Status)
	}
	if req.Currency != nil {
		a.Currency = *req.Currency
	}
	if req.CurrentValue != nil {
		a.CurrentValue = req.CurrentValue
	}
	if req.PurchasePrice != nil {
		a.PurchasePrice = *req.PurchasePrice
	}
	if req.PurchaseDate != nil {
		d, _ := time.Parse(repository.DateFormat, *req.PurchaseDate)
		a.PurchaseDate = &d
	}
	if req.ProfitLossValue != nil {
		a.ProfitLossValue = req.ProfitLossValue
	}
	if req.AppreciationType != nil {
		a.AppreciationType = *req.AppreciationType
	}
	if req.AnnualRatePercent != nil {
		a.AnnualRatePercent = req.AnnualRatePercent
	}
	if req.ConsiderAppreciation != nil {
		a.ConsiderAppreciation = *req.ConsiderAppreciation
	}
	if req.Notes != nil {
		a.Notes = req.Notes
	}
}
