package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/model"
)

// PlanSnapshotRepository provides data access methods for the plan_snapshot table.
// The future-transaction ledger is stored as a JSON document so the
// snapshot reads back exactly as captured, independent of later edits
// to the live transactions.
type PlanSnapshotRepository struct {
	db *sql.DB
}

// NewPlanSnapshotRepository creates a new PlanSnapshotRepository with the provided database connection.
func NewPlanSnapshotRepository(db *sql.DB) *PlanSnapshotRepository {
	return &PlanSnapshotRepository{db: db}
}

const planSnapshotColumns = `id, snapshot_date, name, notes, projected_3m, projected_6m,
	projected_1y, total_value_at_snapshot, cashflow_snapshot, created_at`

// InsertPlanSnapshot persists a new snapshot verbatim.
func (s *PlanSnapshotRepository) InsertPlanSnapshot(p model.PlanSnapshot) error {
	cashflow, err := json.Marshal(p.CashflowSnapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize cashflow snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO plan_snapshot (`+planSnapshotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.SnapshotDate.UTC().Format(DateFormat),
		p.Name,
		p.Notes,
		floatArg(p.Projected3M),
		floatArg(p.Projected6M),
		floatArg(p.Projected1Y),
		floatArg(p.TotalValueAtSnapshot),
		string(cashflow),
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert plan snapshot: %w", err)
	}
	return nil
}

// ListPlanSnapshots retrieves all snapshots ordered by snapshot date
// descending, newest first.
func (s *PlanSnapshotRepository) ListPlanSnapshots() ([]model.PlanSnapshot, error) {
	rows, err := s.db.Query(`
		SELECT ` + planSnapshotColumns + `
		FROM plan_snapshot
		ORDER BY snapshot_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query plan_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.PlanSnapshot{}
	for rows.Next() {
		p, err := scanPlanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan_snapshot table: %w", err)
	}

	return snapshots, nil
}

// GetPlanSnapshot retrieves a single snapshot by ID.
func (s *PlanSnapshotRepository) GetPlanSnapshot(id string) (model.PlanSnapshot, error) {
	row := s.db.QueryRow(`SELECT `+planSnapshotColumns+` FROM plan_snapshot WHERE id = ?`, id)
	p, err := scanPlanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PlanSnapshot{}, apperrors.ErrPlanSnapshotNotFound
	}
	return p, err
}

// UpdateNameNotes edits the only mutable fields of a stored snapshot.
// Every numeric figure and the serialized ledger stay frozen.
func (s *PlanSnapshotRepository) UpdateNameNotes(id, name, notes string) error {
	result, err := s.db.Exec(`UPDATE plan_snapshot SET name = ?, notes = ? WHERE id = ?`, name, notes, id)
	if err != nil {
		return fmt.Errorf("failed to update plan snapshot: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperrors.ErrPlanSnapshotNotFound
	}
	return nil
}

// DeletePlanSnapshot hard-deletes a snapshot.
func (s *PlanSnapshotRepository) DeletePlanSnapshot(id string) error {
	result, err := s.db.Exec(`DELETE FROM plan_snapshot WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan snapshot: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperrors.ErrPlanSnapshotNotFound
	}
	return nil
}

func scanPlanSnapshot(row scanner) (model.PlanSnapshot, error) {
	var p model.PlanSnapshot
	var dateStr, cashflow, createdAt string
	var p3m, p6m, p1y, total sql.NullFloat64

	err := row.Scan(
		&p.ID,
		&dateStr,
		&p.Name,
		&p.Notes,
		&p3m,
		&p6m,
		&p1y,
		&total,
		&cashflow,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PlanSnapshot{}, err
		}
		return model.PlanSnapshot{}, fmt.Errorf("failed to scan plan_snapshot table results: %w", err)
	}

	p.Projected3M = nullFloat(p3m)
	p.Projected6M = nullFloat(p6m)
	p.Projected1Y = nullFloat(p1y)
	p.TotalValueAtSnapshot = nullFloat(total)

	if err = json.Unmarshal([]byte(cashflow), &p.CashflowSnapshot); err != nil {
		return model.PlanSnapshot{}, fmt.Errorf("failed to parse cashflow snapshot: %w", err)
	}
	if p.SnapshotDate, err = ParseTime(dateStr); err != nil {
		return model.PlanSnapshot{}, fmt.Errorf("failed to parse date: %w", err)
	}
	if p.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.PlanSnapshot{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return p, nil
}
