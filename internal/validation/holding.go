package validation

import (
	"strings"

	"github.com/patrimonio/wealth-backend/internal/api/request"
)

// ValidateCreateHolding validates a holding creation request.
func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.AssetID); err != nil {
		errors["assetId"] = err.Error()
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.SecurityID != nil {
		if err := ValidateUUID(*req.SecurityID); err != nil {
			errors["securityId"] = err.Error()
		}
	}

	if req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateHolding validates a partial holding update request.
func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	if req.SecurityID != nil && *req.SecurityID != "" {
		if err := ValidateUUID(*req.SecurityID); err != nil {
			errors["securityId"] = err.Error()
		}
	}

	if req.Quantity != nil && *req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
