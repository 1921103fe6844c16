package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/patrimonio/wealth-backend/internal/engine"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/repository"
)

// PlanService manages plan snapshots: immutable captures of the
// forecast taken to measure later drift.
type PlanService struct {
	planRepo *repository.PlanSnapshotRepository
	forecast *ForecastService
	now      func() time.Time
}

// NewPlanService creates a new PlanService.
func NewPlanService(planRepo *repository.PlanSnapshotRepository, forecast *ForecastService) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		forecast: forecast,
		now:      time.Now,
	}
}

// CreatePlanSnapshot captures the current forecast under the given
// name. The projections, the portfolio total, and the future ledger
// are frozen at creation; only name and notes stay editable.
func (s *PlanService) CreatePlanSnapshot(name, notes string) (model.PlanSnapshot, error) {
	figures, future, err := s.forecast.PlanFigures()
	if err != nil {
		return model.PlanSnapshot{}, err
	}

	now := s.now().UTC()
	snapshot := model.PlanSnapshot{
		ID:                   uuid.NewString(),
		SnapshotDate:         now,
		Name:                 name,
		Notes:                notes,
		Projected3M:          &figures.Projected3M,
		Projected6M:          &figures.Projected6M,
		Projected1Y:          &figures.Projected1Y,
		TotalValueAtSnapshot: &figures.TotalValue,
		CashflowSnapshot:     cashflowItems(future),
		CreatedAt:            now,
	}

	if err := s.planRepo.InsertPlanSnapshot(snapshot); err != nil {
		return model.PlanSnapshot{}, err
	}
	return snapshot, nil
}

// ListPlanSnapshots retrieves all snapshots, newest first.
func (s *PlanService) ListPlanSnapshots() ([]model.PlanSnapshot, error) {
	return s.planRepo.ListPlanSnapshots()
}

// GetPlanSnapshot retrieves one snapshot by ID.
func (s *PlanService) GetPlanSnapshot(id string) (model.PlanSnapshot, error) {
	return s.planRepo.GetPlanSnapshot(id)
}

// UpdatePlanSnapshot edits a snapshot's name and notes. Absent fields
// keep their stored values.
func (s *PlanService) UpdatePlanSnapshot(id string, name, notes *string) (model.PlanSnapshot, error) {
	snapshot, err := s.planRepo.GetPlanSnapshot(id)
	if err != nil {
		return model.PlanSnapshot{}, err
	}

	if name != nil {
		snapshot.Name = *name
	}
	if notes != nil {
		snapshot.Notes = *notes
	}

	if err := s.planRepo.UpdateNameNotes(id, snapshot.Name, snapshot.Notes); err != nil {
		return model.PlanSnapshot{}, err
	}
	return snapshot, nil
}

// DeletePlanSnapshot removes a snapshot permanently.
func (s *PlanService) DeletePlanSnapshot(id string) error {
	return s.planRepo.DeletePlanSnapshot(id)
}

// PlanComparison pairs a stored snapshot with the live figures and the
// per-figure deltas, live minus snapshot.
type PlanComparison struct {
	Snapshot model.PlanSnapshot `json:"snapshot"`
	Live     engine.PlanFigures `json:"live"`
	Diff     engine.PlanDiff    `json:"diff"`
}

// ComparePlan recomputes the forecast and diffs it against a stored
// snapshot.
func (s *PlanService) ComparePlan(id string) (PlanComparison, error) {
	snapshot, err := s.planRepo.GetPlanSnapshot(id)
	if err != nil {
		return PlanComparison{}, err
	}

	live, _, err := s.forecast.PlanFigures()
	if err != nil {
		return PlanComparison{}, err
	}

	return PlanComparison{
		Snapshot: snapshot,
		Live:     live,
		Diff:     engine.DiffPlan(snapshot, live),
	}, nil
}

func cashflowItems(transactions []model.Transaction) []model.CashflowItem {
	items := make([]model.CashflowItem, len(transactions))
	for i, tx := range transactions {
		items[i] = model.CashflowItem{
			ID:                tx.ID,
			Date:              tx.Date.UTC().Format(repository.DateFormat),
			Amount:            tx.Amount,
			AssetID:           tx.AssetID,
			Description:       tx.Description,
			Category:          tx.Category,
			AffectsAssetValue: tx.AffectsAssetValue,
		}
	}
	return items
}
