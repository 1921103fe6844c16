package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/model"
)

// SecurityRepository provides data access methods for the security table.
// Securities are pricing reference data: the engine reads them, the
// quote service refreshes their prices.
type SecurityRepository struct {
	db *sql.DB
}

// NewSecurityRepository creates a new SecurityRepository with the provided database connection.
func NewSecurityRepository(db *sql.DB) *SecurityRepository {
	return &SecurityRepository{db: db}
}

const securityColumns = `id, name, ticker, currency, security_type, current_price, price_updated_at`

// GetSecurities retrieves all securities ordered by name. The result
// includes the synthetic currency-type FX pairs the converter needs.
func (s *SecurityRepository) GetSecurities() ([]model.Security, error) {
	rows, err := s.db.Query(`SELECT ` + securityColumns + ` FROM security ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query security table: %w", err)
	}
	defer rows.Close()

	securities := []model.Security{}
	for rows.Next() {
		sec, err := scanSecurity(rows)
		if err != nil {
			return nil, err
		}
		securities = append(securities, sec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating security table: %w", err)
	}

	return securities, nil
}

// CreateSecurity inserts a new security row.
func (s *SecurityRepository) CreateSecurity(sec model.Security) error {
	_, err := s.db.Exec(`
		INSERT INTO security (`+securityColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sec.ID,
		sec.Name,
		sec.Ticker,
		sec.Currency,
		sec.SecurityType,
		floatArg(sec.CurrentPrice),
		timestampArg(sec.PriceUpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert security: %w", err)
	}
	return nil
}

// UpdatePrice stores a freshly fetched price for the given ticker.
func (s *SecurityRepository) UpdatePrice(ticker string, price float64, fetchedAt time.Time) error {
	result, err := s.db.Exec(`
		UPDATE security
		SET current_price = ?, price_updated_at = ?
		WHERE ticker = ?`,
		price,
		fetchedAt.UTC().Format(time.RFC3339),
		ticker,
	)
	if err != nil {
		return fmt.Errorf("failed to update security price: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperrors.ErrSecurityNotFound
	}
	return nil
}

func timestampArg(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(time.RFC3339)
}

func scanSecurity(row scanner) (model.Security, error) {
	var sec model.Security
	var currentPrice sql.NullFloat64
	var priceUpdatedAt sql.NullString

	err := row.Scan(
		&sec.ID,
		&sec.Name,
		&sec.Ticker,
		&sec.Currency,
		&sec.SecurityType,
		&currentPrice,
		&priceUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Security{}, err
		}
		return model.Security{}, fmt.Errorf("failed to scan security table results: %w", err)
	}

	sec.CurrentPrice = nullFloat(currentPrice)
	if sec.PriceUpdatedAt, err = nullTime(priceUpdatedAt); err != nil {
		return model.Security{}, fmt.Errorf("failed to parse price timestamp: %w", err)
	}

	return sec, nil
}
