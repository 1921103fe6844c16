package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patrimonio/wealth-backend/internal/model"
)

// PortfolioSnapshotRepository provides data access methods for the
// portfolio_snapshot table. One row per calendar day; re-running the
// snapshot job on the same day overwrites the earlier figures.
type PortfolioSnapshotRepository struct {
	db *sql.DB
}

// NewPortfolioSnapshotRepository creates a new PortfolioSnapshotRepository with the provided database connection.
func NewPortfolioSnapshotRepository(db *sql.DB) *PortfolioSnapshotRepository {
	return &PortfolioSnapshotRepository{db: db}
}

// UpsertPortfolioSnapshot inserts the day's snapshot or replaces an
// existing row keyed on snapshot_date.
func (s *PortfolioSnapshotRepository) UpsertPortfolioSnapshot(p model.PortfolioSnapshot) error {
	allocation, err := json.Marshal(p.AllocationByCategory)
	if err != nil {
		return fmt.Errorf("failed to serialize allocation: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO portfolio_snapshot (id, snapshot_date, total_value, total_pl, average_yield, asset_count, allocation_by_category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(snapshot_date) DO UPDATE SET
			total_value = excluded.total_value,
			total_pl = excluded.total_pl,
			average_yield = excluded.average_yield,
			asset_count = excluded.asset_count,
			allocation_by_category = excluded.allocation_by_category`,
		p.ID,
		p.SnapshotDate.UTC().Format(DateFormat),
		p.TotalValue,
		p.TotalPL,
		floatArg(p.AverageYield),
		p.AssetCount,
		string(allocation),
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert portfolio snapshot: %w", err)
	}
	return nil
}

// ListPortfolioSnapshots retrieves snapshots in chronological order,
// optionally bounded to a date range.
func (s *PortfolioSnapshotRepository) ListPortfolioSnapshots(startDate, endDate *time.Time) ([]model.PortfolioSnapshot, error) {
	query := `
		SELECT id, snapshot_date, total_value, total_pl, average_yield, asset_count, allocation_by_category, created_at
		FROM portfolio_snapshot
		WHERE 1=1`
	args := []any{}

	if startDate != nil {
		query += ` AND snapshot_date >= ?`
		args = append(args, startDate.UTC().Format(DateFormat))
	}
	if endDate != nil {
		query += ` AND snapshot_date <= ?`
		args = append(args, endDate.UTC().Format(DateFormat))
	}
	query += ` ORDER BY snapshot_date ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.PortfolioSnapshot{}
	for rows.Next() {
		var p model.PortfolioSnapshot
		var dateStr, allocation, createdAt string
		var yield sql.NullFloat64

		err = rows.Scan(&p.ID, &dateStr, &p.TotalValue, &p.TotalPL, &yield, &p.AssetCount, &allocation, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_snapshot table results: %w", err)
		}

		p.AverageYield = nullFloat(yield)
		if err = json.Unmarshal([]byte(allocation), &p.AllocationByCategory); err != nil {
			return nil, fmt.Errorf("failed to parse allocation: %w", err)
		}
		if p.SnapshotDate, err = ParseTime(dateStr); err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		if p.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		snapshots = append(snapshots, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_snapshot table: %w", err)
	}

	return snapshots, nil
}
