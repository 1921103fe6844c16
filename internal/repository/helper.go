package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// DateFormat is how day-granular dates are stored in SQLite.
const DateFormat = "2006-01-02"

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
// Note: mirrors validation.ParseTime — both are intentionally kept local to avoid cross-layer imports.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse(DateFormat, str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// nullFloat converts a scanned nullable REAL into a *float64.
func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// nullString converts a scanned nullable TEXT into a *string.
func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// nullTime parses a scanned nullable date string into a *time.Time.
func nullTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := ParseTime(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// floatArg converts a *float64 into a driver argument.
func floatArg(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// stringArg converts a *string into a driver argument.
func stringArg(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

// timeArg converts a *time.Time into a stored date string argument.
func timeArg(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(DateFormat)
}
