package validation

import (
	"strings"
	"time"

	"github.com/patrimonio/wealth-backend/internal/api/request"
)

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - date: Must be in YYYY-MM-DD format
//
// Optional fields (validated if provided):
//   - assetId: Must be a valid UUID
//
// A zero amount is accepted; markers and reminders are legitimate
// ledger entries.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if req.AssetID != nil {
		if err := ValidateUUID(*req.AssetID); err != nil {
			errors["assetId"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateDateRange parses optional start and end query values and
// checks ordering. Empty values yield nil times.
func ValidateDateRange(start, end string) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time

	if start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return nil, nil, &Error{Fields: map[string]string{"startDate": err.Error()}}
		}
		startDate = &t
	}
	if end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return nil, nil, &Error{Fields: map[string]string{"endDate": err.Error()}}
		}
		endDate = &t
	}

	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, nil, &Error{Fields: map[string]string{"endDate": "end date precedes start date"}}
	}

	return startDate, endDate, nil
}
