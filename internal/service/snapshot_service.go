package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/repository"
)

// SnapshotService captures periodic portfolio snapshots for the
// historical value chart. One snapshot per calendar day; a re-capture
// on the same day replaces the earlier figures.
type SnapshotService struct {
	portfolio    *PortfolioService
	snapshotRepo *repository.PortfolioSnapshotRepository
	now          func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(portfolio *PortfolioService, snapshotRepo *repository.PortfolioSnapshotRepository) *SnapshotService {
	return &SnapshotService{
		portfolio:    portfolio,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

// CaptureSnapshot values the portfolio and stores today's snapshot.
func (s *SnapshotService) CaptureSnapshot() (model.PortfolioSnapshot, error) {
	summary, err := s.portfolio.GetSummary()
	if err != nil {
		return model.PortfolioSnapshot{}, err
	}

	allocation := make(map[string]float64, len(summary.Categories))
	for _, c := range summary.Categories {
		allocation[string(c.Category)] = c.Value
	}

	now := s.now().UTC()
	snapshot := model.PortfolioSnapshot{
		ID:                   uuid.NewString(),
		SnapshotDate:         now.Truncate(24 * time.Hour),
		TotalValue:           summary.TotalValue,
		TotalPL:              summary.TotalProfitLoss,
		AverageYield:         summary.AverageYieldPercent,
		AssetCount:           summary.AssetCount,
		AllocationByCategory: allocation,
		CreatedAt:            now,
	}

	if err := s.snapshotRepo.UpsertPortfolioSnapshot(snapshot); err != nil {
		return model.PortfolioSnapshot{}, err
	}
	return snapshot, nil
}

// GetHistory retrieves stored snapshots in chronological order,
// optionally bounded to a date range.
func (s *SnapshotService) GetHistory(startDate, endDate *time.Time) ([]model.PortfolioSnapshot, error) {
	return s.snapshotRepo.ListPortfolioSnapshots(startDate, endDate)
}
