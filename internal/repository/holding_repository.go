package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/model"
)

// HoldingRepository provides data access methods for the market_holding table.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

const holdingColumns = `id, asset_id, name, security_id, quantity, currency, current_value, created_at, updated_at`

// GetHoldings retrieves market holdings, optionally restricted to one
// asset, ordered by name.
func (s *HoldingRepository) GetHoldings(assetID string) ([]model.MarketHolding, error) {
	query := `SELECT ` + holdingColumns + ` FROM market_holding WHERE 1=1`
	var args []any

	if assetID != "" {
		query += " AND asset_id = ?"
		args = append(args, assetID)
	}
	query += " ORDER BY name ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query market_holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.MarketHolding{}
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating market_holding table: %w", err)
	}

	return holdings, nil
}

// GetHolding retrieves a single market holding by ID.
func (s *HoldingRepository) GetHolding(id string) (model.MarketHolding, error) {
	row := s.db.QueryRow(`SELECT `+holdingColumns+` FROM market_holding WHERE id = ?`, id)
	h, err := scanHolding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MarketHolding{}, apperrors.ErrHoldingNotFound
	}
	return h, err
}

// CreateHolding inserts a new market holding row.
func (s *HoldingRepository) CreateHolding(h model.MarketHolding) error {
	_, err := s.db.Exec(`
		INSERT INTO market_holding (`+holdingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID,
		h.AssetID,
		h.Name,
		stringArg(h.SecurityID),
		h.Quantity,
		h.Currency,
		floatArg(h.CurrentValue),
		h.CreatedAt.UTC().Format(time.RFC3339),
		h.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert market holding: %w", err)
	}
	return nil
}

// UpdateHolding rewrites the mutable columns of an existing holding.
func (s *HoldingRepository) UpdateHolding(h model.MarketHolding) error {
	result, err := s.db.Exec(`
		UPDATE market_holding
		SET name = ?, security_id = ?, quantity = ?, currency = ?, current_value = ?, updated_at = ?
		WHERE id = ?`,
		h.Name,
		stringArg(h.SecurityID),
		h.Quantity,
		h.Currency,
		floatArg(h.CurrentValue),
		h.UpdatedAt.UTC().Format(time.RFC3339),
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update market holding: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

// DeleteHolding removes a market holding.
func (s *HoldingRepository) DeleteHolding(id string) error {
	result, err := s.db.Exec(`DELETE FROM market_holding WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete market holding: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

func scanHolding(row scanner) (model.MarketHolding, error) {
	var h model.MarketHolding
	var securityID sql.NullString
	var currentValue sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(
		&h.ID,
		&h.AssetID,
		&h.Name,
		&securityID,
		&h.Quantity,
		&h.Currency,
		&currentValue,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.MarketHolding{}, err
		}
		return model.MarketHolding{}, fmt.Errorf("failed to scan market_holding table results: %w", err)
	}

	h.SecurityID = nullString(securityID)
	h.CurrentValue = nullFloat(currentValue)

	if h.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.MarketHolding{}, fmt.Errorf("failed to parse date: %w", err)
	}
	if h.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.MarketHolding{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return h, nil
}
