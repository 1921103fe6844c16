package service_test

import (
	"testing"
	"time"

	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/testutil"
)

// TestSnapshotService_CaptureSnapshot tests daily snapshot capture.
//
// WHY: The history chart depends on one snapshot per day. A second
// capture on the same day must replace the earlier row, not duplicate
// it, so a manual capture after the scheduled one stays consistent.
func TestSnapshotService_CaptureSnapshot(t *testing.T) {
	t.Run("stores the current portfolio figures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		testutil.NewAsset().WithCategory(model.CategoryRealEstate).WithCurrentValue(300000).Build(t, db)
		testutil.NewAsset().WithCategory(model.CategoryCrypto).WithCurrentValue(5000).Build(t, db)

		snapshot, err := svc.CaptureSnapshot()
		if err != nil {
			t.Fatalf("CaptureSnapshot() returned unexpected error: %v", err)
		}

		if !almostEqual(snapshot.TotalValue, 305000) {
			t.Errorf("Expected total 305000, got %f", snapshot.TotalValue)
		}
		if snapshot.AssetCount != 2 {
			t.Errorf("Expected 2 assets, got %d", snapshot.AssetCount)
		}
		if !almostEqual(snapshot.AllocationByCategory[string(model.CategoryRealEstate)], 300000) {
			t.Errorf("Unexpected real estate allocation: %v", snapshot.AllocationByCategory)
		}
	})

	t.Run("replaces an earlier snapshot from the same day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		asset := testutil.NewAsset().WithCurrentValue(1000).Build(t, db)

		if _, err := svc.CaptureSnapshot(); err != nil {
			t.Fatalf("First CaptureSnapshot() returned unexpected error: %v", err)
		}

		if _, err := db.Exec("UPDATE asset SET current_value = 2000 WHERE id = ?", asset.ID); err != nil {
			t.Fatalf("Failed to revalue asset: %v", err)
		}

		if _, err := svc.CaptureSnapshot(); err != nil {
			t.Fatalf("Second CaptureSnapshot() returned unexpected error: %v", err)
		}

		history, err := svc.GetHistory(nil, nil)
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}

		if len(history) != 1 {
			t.Fatalf("Expected a single snapshot row, got %d", len(history))
		}
		if !almostEqual(history[0].TotalValue, 2000) {
			t.Errorf("Expected the later figures to win, got %f", history[0].TotalValue)
		}
	})
}

// TestSnapshotService_GetHistory tests the history range query.
//
// WHY: The chart requests bounded windows; the range filter must be
// inclusive and the rows must come back in chronological order.
func TestSnapshotService_GetHistory(t *testing.T) {
	t.Run("filters by date range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		insert := func(date string, value float64) {
			_, err := db.Exec(
				`INSERT INTO portfolio_snapshot
				 (id, snapshot_date, total_value, total_pl, asset_count, allocation_by_category, created_at)
				 VALUES (?, ?, ?, 0, 1, '{}', ?)`,
				testutil.MakeID(), date, value, time.Now().UTC().Format(time.RFC3339),
			)
			if err != nil {
				t.Fatalf("Failed to insert snapshot: %v", err)
			}
		}
		insert("2025-01-10", 100)
		insert("2025-02-10", 200)
		insert("2025-03-10", 300)

		start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

		history, err := svc.GetHistory(&start, &end)
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}

		if len(history) != 1 {
			t.Fatalf("Expected 1 snapshot in range, got %d", len(history))
		}
		if history[0].TotalValue != 200 {
			t.Errorf("Expected the February snapshot, got %f", history[0].TotalValue)
		}
	})

	t.Run("returns all snapshots in chronological order without bounds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		for i, date := range []string{"2025-03-01", "2025-01-01", "2025-02-01"} {
			_, err := db.Exec(
				`INSERT INTO portfolio_snapshot
				 (id, snapshot_date, total_value, total_pl, asset_count, allocation_by_category, created_at)
				 VALUES (?, ?, ?, 0, 1, '{}', ?)`,
				testutil.MakeID(), date, float64(i), time.Now().UTC().Format(time.RFC3339),
			)
			if err != nil {
				t.Fatalf("Failed to insert snapshot: %v", err)
			}
		}

		history, err := svc.GetHistory(nil, nil)
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}

		if len(history) != 3 {
			t.Fatalf("Expected 3 snapshots, got %d", len(history))
		}
		for i := 1; i < len(history); i++ {
			if history[i].SnapshotDate.Before(history[i-1].SnapshotDate) {
				t.Error("Expected snapshots in chronological order")
			}
		}
	})
}
