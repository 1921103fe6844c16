package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/patrimonio/wealth-backend/internal/api/request"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/testutil"
)

func TestAssetHandler_ListAssets(t *testing.T) {
	setupHandler := func(t *testing.T) (*AssetHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAssetService(t, db)
		return NewAssetHandler(as), db
	}

	t.Run("lists assets without recovery by default", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.NewAsset().Build(t, db)
		testutil.NewAsset().WithStatus(model.StatusInRecovery).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
		w := httptest.NewRecorder()

		handler.ListAssets(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var assets []model.Asset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&assets)

		if len(assets) != 1 {
			t.Errorf("Expected 1 asset, got %d", len(assets))
		}
	})

	t.Run("includes recovery assets when requested", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.NewAsset().Build(t, db)
		testutil.NewAsset().WithStatus(model.StatusInRecovery).Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/assets", map[string]string{
			"includeRecovery": "true",
		})
		w := httptest.NewRecorder()

		handler.ListAssets(w, req)

		var assets []model.Asset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&assets)

		if len(assets) != 2 {
			t.Errorf("Expected 2 assets, got %d", len(assets))
		}
	})

	t.Run("rejects an unknown category filter", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/assets", map[string]string{
			"category": "Spaceships",
		})
		w := httptest.NewRecorder()

		handler.ListAssets(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAssetHandler_GetAsset(t *testing.T) {
	setupHandler := func(t *testing.T) (*AssetHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAssetService(t, db)
		return NewAssetHandler(as), db
	}

	t.Run("returns the asset", func(t *testing.T) {
		handler, db := setupHandler(t)
		asset := testutil.NewAsset().WithName("Apartment").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/assets/"+asset.ID, map[string]string{
			"uuid": asset.ID,
		})
		w := httptest.NewRecorder()

		handler.GetAsset(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.Asset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)

		if got.Name != "Apartment" {
			t.Errorf("Expected name 'Apartment', got '%s'", got.Name)
		}
	})

	t.Run("returns 404 for unknown asset", func(t *testing.T) {
		handler, _ := setupHandler(t)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/assets/"+id, map[string]string{
			"uuid": id,
		})
		w := httptest.NewRecorder()

		handler.GetAsset(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAssetHandler_CreateAsset(t *testing.T) {
	setupHandler := func(t *testing.T) (*AssetHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAssetService(t, db)
		return NewAssetHandler(as), db
	}

	t.Run("creates an asset", func(t *testing.T) {
		handler, _ := setupHandler(t)

		value := 250000.0
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets", request.CreateAssetRequest{
			Name:         "Apartment",
			Category:     string(model.CategoryRealEstate),
			CurrentValue: &value,
		})
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var created model.Asset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&created)

		if created.ID == "" {
			t.Error("Expected created asset to carry an ID")
		}
		if created.Status != model.StatusActive {
			t.Errorf("Expected default status active, got '%s'", created.Status)
		}
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets", request.CreateAssetRequest{
			Category: string(model.CategoryRealEstate),
		})
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets", request.CreateAssetRequest{
			Name:     "Mystery",
			Category: "Spaceships",
		})
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAssetHandler_UpdateAsset(t *testing.T) {
	setupHandler := func(t *testing.T) (*AssetHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAssetService(t, db)
		return NewAssetHandler(as), db
	}

	t.Run("updates the provided fields only", func(t *testing.T) {
		handler, db := setupHandler(t)
		asset := testutil.NewAsset().WithName("Old").WithCurrentValue(1000).Build(t, db)

		name := "New"
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/assets/"+asset.ID, request.UpdateAssetRequest{
			Name: &name,
		})
		req = testutil.WithURLParams(req, map[string]string{"uuid": asset.ID})
		w := httptest.NewRecorder()

		handler.UpdateAsset(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var updated model.Asset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&updated)

		if updated.Name != "New" {
			t.Errorf("Expected updated name, got '%s'", updated.Name)
		}
		if updated.CurrentValue == nil || *updated.CurrentValue != 1000 {
			t.Errorf("Expected current value untouched, got %v", updated.CurrentValue)
		}
	})

	t.Run("returns 404 for unknown asset", func(t *testing.T) {
		handler, _ := setupHandler(t)

		id := testutil.MakeID()
		name := "New"
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/assets/"+id, request.UpdateAssetRequest{
			Name: &name,
		})
		req = testutil.WithURLParams(req, map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.UpdateAsset(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAssetHandler_DeleteAsset(t *testing.T) {
	setupHandler := func(t *testing.T) (*AssetHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAssetService(t, db)
		return NewAssetHandler(as), db
	}

	t.Run("deletes the asset", func(t *testing.T) {
		handler, db := setupHandler(t)
		asset := testutil.NewAsset().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/assets/"+asset.ID, map[string]string{
			"uuid": asset.ID,
		})
		w := httptest.NewRecorder()

		handler.DeleteAsset(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for unknown asset", func(t *testing.T) {
		handler, _ := setupHandler(t)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/assets/"+id, map[string]string{
			"uuid": id,
		})
		w := httptest.NewRecorder()

		handler.DeleteAsset(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
