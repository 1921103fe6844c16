package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/patrimonio/wealth-backend/internal/api/response"
	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/service"
)

// SettingsHandler handles HTTP requests for application settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// SetSettingRequest is the body for storing a setting.
type SetSettingRequest struct {
	Value  string `json:"value"`
	Secret bool   `json:"secret,omitempty"`
}

// GetSetting handles GET requests for one setting. Secret values come
// back masked.
//
// Endpoint: GET /api/settings/{key}
// Response: 200 OK with Setting
// Error: 404 Not Found if the setting does not exist
func (h *SettingsHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	setting, err := h.settingsService.GetSetting(key)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSettingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve setting", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, setting)
}

// SetSetting handles PUT requests to store a setting. Marking it
// secret encrypts the value at rest.
//
// Endpoint: PUT /api/settings/{key}
// Request Body: SetSettingRequest
// Response: 204 No Content
// Error: 400 Bad Request if the key or body is invalid
func (h *SettingsHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if strings.TrimSpace(key) == "" {
		response.RespondError(w, http.StatusBadRequest, "setting key is required", "")
		return
	}

	req, err := parseJSON[SetSettingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.settingsService.SetSetting(key, req.Value, req.Secret); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to store setting", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
