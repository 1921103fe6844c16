package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/model"
)

// TransactionRepository provides data access methods for the wealth_transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, date, description, category, amount, asset_id, affects_asset_value, created_at`

// GetTransactions retrieves transactions matching the filter, sorted by
// date in ascending order with insertion order breaking ties. Zero-value
// filter fields are ignored.
//
// The ascending-date ordering is the ledger's canonical order; display
// reordering happens in the engine, never here.
func (s *TransactionRepository) GetTransactions(filter model.TransactionFilter) ([]model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM wealth_transaction
		WHERE 1=1
	`
	var args []any

	if filter.AssetID != "" {
		query += " AND asset_id = ?"
		args = append(args, filter.AssetID)
	}
	if !filter.StartDate.IsZero() {
		query += " AND date >= ?"
		args = append(args, filter.StartDate.Format(DateFormat))
	}
	if !filter.EndDate.IsZero() {
		query += " AND date <= ?"
		args = append(args, filter.EndDate.Format(DateFormat))
	}
	query += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wealth_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wealth_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by ID.
func (s *TransactionRepository) GetTransaction(id string) (model.Transaction, error) {
	row := s.db.QueryRow(`SELECT `+transactionColumns+` FROM wealth_transaction WHERE id = ?`, id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	return t, err
}

// CreateTransaction inserts a new transaction row.
func (s *TransactionRepository) CreateTransaction(t model.Transaction) error {
	_, err := s.db.Exec(`
		INSERT INTO wealth_transaction (`+transactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID,
		t.Date.UTC().Format(DateFormat),
		t.Description,
		stringArg(t.Category),
		t.Amount,
		stringArg(t.AssetID),
		t.AffectsAssetValue,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (s *TransactionRepository) DeleteTransaction(id string) error {
	result, err := s.db.Exec(`DELETE FROM wealth_transaction WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(row scanner) (model.Transaction, error) {
	var t model.Transaction
	var dateStr, createdAtStr string
	var category, assetID sql.NullString

	err := row.Scan(
		&t.ID,
		&dateStr,
		&t.Description,
		&category,
		&t.Amount,
		&assetID,
		&t.AffectsAssetValue,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to scan wealth_transaction table results: %w", err)
	}

	t.Category = nullString(category)
	t.AssetID = nullString(assetID)

	if t.Date, err = ParseTime(dateStr); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}
	if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return t, nil
}
