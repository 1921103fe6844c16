package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/model"
)

// AssetRepository provides data access methods for the asset table.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetColumns = `id, name, category, subcategory, status, currency, current_value,
	purchase_price, purchase_date, profit_loss_value, appreciation_type,
	annual_rate_percent, consider_appreciation, notes, created_at, updated_at`

// GetAssets retrieves assets based on filter criteria, ordered by
// category then name. InRecovery assets are excluded unless the filter
// asks for them; they stay out of every aggregate by default.
func (s *AssetRepository) GetAssets(filter model.AssetFilter) ([]model.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM asset
		WHERE 1=1
	`
	var args []any

	if !filter.IncludeRecovery {
		query += " AND status != ?"
		args = append(args, string(model.StatusInRecovery))
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, string(filter.Category))
	}
	query += " ORDER BY category ASC, name ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

// GetAsset retrieves a single asset by ID.
func (s *AssetRepository) GetAsset(id string) (model.Asset, error) {
	row := s.db.QueryRow(`SELECT `+assetColumns+` FROM asset WHERE id = ?`, id)
	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	return a, err
}

// CreateAsset inserts a new asset row.
func (s *AssetRepository) CreateAsset(a model.Asset) error {
	_, err := s.db.Exec(`
		INSERT INTO asset (`+assetColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.Name,
		string(a.Category),
		stringArg(a.Subcategory),
		string(a.Status),
		a.Currency,
		floatArg(a.CurrentValue),
		a.PurchasePrice,
		timeArg(a.PurchaseDate),
		floatArg(a.ProfitLossValue),
		a.AppreciationType,
		floatArg(a.AnnualRatePercent),
		a.ConsiderAppreciation,
		stringArg(a.Notes),
		a.CreatedAt.UTC().Format(time.RFC3339),
		a.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}
	return nil
}

// UpdateAsset rewrites every mutable column of an existing asset.
func (s *AssetRepository) UpdateAsset(a model.Asset) error {
	result, err := s.db.Exec(`
		UPDATE asset
		SET name = ?, category = ?, subcategory = ?, status = ?, currency = ?,
			current_value = ?, purchase_price = ?, purchase_date = ?,
			profit_loss_value = ?, appreciation_type = ?, annual_rate_percent = ?,
			consider_appreciation = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		a.Name,
		string(a.Category),
		stringArg(a.Subcategory),
		string(a.Status),
		a.Currency,
		floatArg(a.CurrentValue),
		a.PurchasePrice,
		timeArg(a.PurchaseDate),
		floatArg(a.ProfitLossValue),
		a.AppreciationType,
		floatArg(a.AnnualRatePercent),
		a.ConsiderAppreciation,
		stringArg(a.Notes),
		a.UpdatedAt.UTC().Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

// DeleteAsset removes an asset. Holdings cascade through the schema;
// linked transactions keep their rows with the asset reference cleared.
func (s *AssetRepository) DeleteAsset(id string) error {
	result, err := s.db.Exec(`DELETE FROM asset WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(row scanner) (model.Asset, error) {
	var a model.Asset
	var category, status string
	var subcategory, purchaseDate, notes sql.NullString
	var currentValue, profitLoss, annualRate sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(
		&a.ID,
		&a.Name,
		&category,
		&subcategory,
		&status,
		&a.Currency,
		&currentValue,
		&a.PurchasePrice,
		&purchaseDate,
		&profitLoss,
		&a.AppreciationType,
		&annualRate,
		&a.ConsiderAppreciation,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Asset{}, err
		}
		return model.Asset{}, fmt.Errorf("failed to scan asset table results: %w", err)
	}

	a.Category = model.AssetCategory(category)
	a.Status = model.AssetStatus(status)
	a.Subcategory = nullString(subcategory)
	a.Notes = nullString(notes)
	a.CurrentValue = nullFloat(currentValue)
	a.ProfitLossValue = nullFloat(profitLoss)
	a.AnnualRatePercent = nullFloat(annualRate)

	if a.PurchaseDate, err = nullTime(purchaseDate); err != nil {
		return model.Asset{}, fmt.Errorf("failed to parse purchase date: %w", err)
	}
	if a.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Asset{}, fmt.Errorf("failed to parse date: %w", err)
	}
	if a.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.Asset{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return a, nil
}
