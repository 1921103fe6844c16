package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/patrimonio/wealth-backend/internal/api/request"
	"github.com/patrimonio/wealth-backend/internal/model"
)

// ValidateCreateAsset validates an asset creation request.
//
// Required fields:
//   - name: Must be non-empty
//   - category: Must be a known asset category
//
// Optional fields (validated if provided):
//   - status: Must be a known asset status
//   - purchaseDate: Must be in YYYY-MM-DD format
//   - appreciationType: Must be "appreciates" or "depreciates"
func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if !model.ValidCategory(model.AssetCategory(req.Category)) {
		errors["category"] = fmt.Sprintf("invalid category: %s", req.Category)
	}

	if req.Status != "" && !model.ValidStatus(model.AssetStatus(req.Status)) {
		errors["status"] = fmt.Sprintf("invalid status: %s", req.Status)
	}

	if req.PurchaseDate != nil {
		if _, err := time.Parse("2006-01-02", *req.PurchaseDate); err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}

	if req.AppreciationType != "" &&
		req.AppreciationType != model.Appreciates && req.AppreciationType != model.Depreciates {
		errors["appreciationType"] = fmt.Sprintf("invalid appreciation type: %s", req.AppreciationType)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateAsset validates a partial asset update request.
// Only fields present in the request are checked.
func ValidateUpdateAsset(req request.UpdateAssetRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	if req.Category != nil && !model.ValidCategory(model.AssetCategory(*req.Category)) {
		errors["category"] = fmt.Sprintf("invalid category: %s", *req.Category)
	}

	if req.Status != nil && !model.ValidStatus(model.AssetStatus(*req.Status)) {
		errors["status"] = fmt.Sprintf("invalid status: %s", *req.Status)
	}

	if req.PurchaseDate != nil {
		if _, err := time.Parse("2006-01-02", *req.PurchaseDate); err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}

	if req.AppreciationType != nil &&
		*req.AppreciationType != model.Appreciates && *req.AppreciationType != model.Depreciates {
		errors["appreciationType"] = fmt.Sprintf("invalid appreciation type: %s", *req.AppreciationType)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
