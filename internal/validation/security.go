package validation

import (
	"strings"

	"github.com/patrimonio/wealth-backend/internal/api/request"
)

// ValidateCreateSecurity validates a security creation request.
func ValidateCreateSecurity(req request.CreateSecurityRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if strings.TrimSpace(req.Ticker) == "" {
		errors["ticker"] = "ticker is required"
	}

	if req.CurrentPrice != nil && *req.CurrentPrice < 0 {
		errors["currentPrice"] = "price cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
