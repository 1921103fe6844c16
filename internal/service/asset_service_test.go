package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/testutil"
)

// TestAssetService_CreateAsset tests asset creation defaults.
//
// WHY: Most assets are created with only a name and category; the
// service must fill in the ID, timestamps, and sensible defaults so
// the engine can value them immediately.
func TestAssetService_CreateAsset(t *testing.T) {
	t.Run("assigns ID and defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		created, err := svc.CreateAsset(model.Asset{
			Name:     "Apartment",
			Category: model.CategoryRealEstate,
		})
		if err != nil {
			t.Fatalf("CreateAsset() returned unexpected error: %v", err)
		}

		if created.ID == "" {
			t.Error("Expected asset to receive an ID")
		}
		if created.Status != model.StatusActive {
			t.Errorf("Expected default status active, got %q", created.Status)
		}
		if created.Currency != "EUR" {
			t.Errorf("Expected default currency EUR, got %q", created.Currency)
		}
		if created.AppreciationType != model.Appreciates {
			t.Errorf("Expected default appreciation type, got %q", created.AppreciationType)
		}
		if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
			t.Error("Expected timestamps to be set")
		}
	})

	t.Run("persists the asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		created, err := svc.CreateAsset(model.Asset{Name: "Car", Category: model.CategoryVehicles})
		if err != nil {
			t.Fatalf("CreateAsset() returned unexpected error: %v", err)
		}

		got, err := svc.GetAsset(created.ID)
		if err != nil {
			t.Fatalf("GetAsset() returned unexpected error: %v", err)
		}
		if got.Name != "Car" {
			t.Errorf("Expected name 'Car', got %q", got.Name)
		}
	})
}

// TestAssetService_GetAssets tests the asset list filter.
//
// WHY: The dashboard hides recovery assets by default and supports a
// category tab; both behaviors live in the filter.
func TestAssetService_GetAssets(t *testing.T) {
	t.Run("excludes recovery assets unless requested", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		testutil.NewAsset().Build(t, db)
		testutil.NewAsset().WithStatus(model.StatusInRecovery).Build(t, db)

		visible, err := svc.GetAssets(model.AssetFilter{})
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}
		if len(visible) != 1 {
			t.Errorf("Expected 1 asset without recovery, got %d", len(visible))
		}

		all, err := svc.GetAssets(model.AssetFilter{IncludeRecovery: true})
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("Expected 2 assets with recovery, got %d", len(all))
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		testutil.NewAsset().WithCategory(model.CategoryCrypto).Build(t, db)
		testutil.NewAsset().WithCategory(model.CategoryRealEstate).Build(t, db)

		crypto, err := svc.GetAssets(model.AssetFilter{Category: model.CategoryCrypto})
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}
		if len(crypto) != 1 || crypto[0].Category != model.CategoryCrypto {
			t.Errorf("Expected only the crypto asset, got %d assets", len(crypto))
		}
	})
}

// TestAssetService_UpdateAsset tests partial updates.
//
// WHY: Updates arrive as sparse payloads. Fields the caller leaves out
// must keep their stored values, and the updated timestamp must move.
func TestAssetService_UpdateAsset(t *testing.T) {
	t.Run("updates only the applied fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		asset := testutil.NewAsset().WithName("Old").WithCurrentValue(1000).Build(t, db)

		updated, err := svc.UpdateAsset(asset.ID, func(a *model.Asset) {
			a.Name = "New"
		})
		if err != nil {
			t.Fatalf("UpdateAsset() returned unexpected error: %v", err)
		}

		if updated.Name != "New" {
			t.Errorf("Expected updated name, got %q", updated.Name)
		}
		if updated.CurrentValue == nil || *updated.CurrentValue != 1000 {
			t.Errorf("Expected current value untouched, got %v", updated.CurrentValue)
		}
		if !updated.UpdatedAt.After(asset.UpdatedAt) {
			t.Error("Expected updated timestamp to advance")
		}
	})

	t.Run("returns not found for unknown asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		_, err := svc.UpdateAsset(testutil.MakeID(), func(a *model.Asset) {})
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}

// TestAssetService_DeleteAsset tests asset removal.
//
// WHY: Deleting an asset must not orphan its ledger history; linked
// transactions keep their rows with the asset reference cleared.
func TestAssetService_DeleteAsset(t *testing.T) {
	t.Run("removes the asset and keeps linked transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		txSvc := testutil.NewTestTransactionService(t, db)

		asset := testutil.NewAsset().Build(t, db)
		tx := testutil.NewTransaction(time.Now().UTC().AddDate(0, -1, 0), -500).
			ForAsset(asset.ID).
			Build(t, db)

		if err := svc.DeleteAsset(asset.ID); err != nil {
			t.Fatalf("DeleteAsset() returned unexpected error: %v", err)
		}

		if _, err := svc.GetAsset(asset.ID); !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound after delete, got %v", err)
		}

		kept, err := txSvc.GetTransaction(tx.ID)
		if err != nil {
			t.Fatalf("Expected transaction to survive asset deletion: %v", err)
		}
		if kept.AssetID != nil {
			t.Errorf("Expected asset link cleared, got %v", *kept.AssetID)
		}
	})

	t.Run("returns not found for unknown asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		err := svc.DeleteAsset(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}
