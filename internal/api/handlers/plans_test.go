package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/patrimonio/wealth-backend/internal/api/request"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/service"
	"github.com/patrimonio/wealth-backend/internal/testutil"
)

func TestPlanHandler_CreatePlan(t *testing.T) {
	setupHandler := func(t *testing.T) (*PlanHandler, *service.PlanService, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPlanService(t, db)
		return NewPlanHandler(ps), ps, db
	}

	t.Run("captures the current forecast", func(t *testing.T) {
		handler, _, db := setupHandler(t)

		testutil.NewAsset().WithCurrentValue(10000).Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/plans", request.CreatePlanSnapshotRequest{
			Name:  "Baseline",
			Notes: "before the renovation",
		})
		w := httptest.NewRecorder()

		handler.CreatePlan(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var plan model.PlanSnapshot
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&plan)

		if plan.Name != "Baseline" {
			t.Errorf("Expected name 'Baseline', got '%s'", plan.Name)
		}
		if plan.TotalValueAtSnapshot == nil || *plan.TotalValueAtSnapshot != 10000 {
			t.Errorf("Expected frozen total 10000, got %v", plan.TotalValueAtSnapshot)
		}
	})
}

func TestPlanHandler_ComparePlan(t *testing.T) {
	setupHandler := func(t *testing.T) (*PlanHandler, *service.PlanService, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPlanService(t, db)
		return NewPlanHandler(ps), ps, db
	}

	t.Run("returns snapshot, live figures, and diff", func(t *testing.T) {
		handler, ps, db := setupHandler(t)

		testutil.NewAsset().WithCurrentValue(10000).Build(t, db)
		created, err := ps.CreatePlanSnapshot("Baseline", "")
		if err != nil {
			t.Fatalf("Failed to create plan snapshot: %v", err)
		}

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/plans/"+created.ID+"/comparison", map[string]string{
			"uuid": created.ID,
		})
		w := httptest.NewRecorder()

		handler.ComparePlan(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var cmp service.PlanComparison
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&cmp)

		if cmp.Snapshot.ID != created.ID {
			t.Errorf("Expected snapshot %s, got %s", created.ID, cmp.Snapshot.ID)
		}
		if cmp.Diff.TotalValue == nil {
			t.Error("Expected a total value delta, got nil")
		}
	})

	t.Run("returns 404 for unknown snapshot", func(t *testing.T) {
		handler, _, _ := setupHandler(t)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/plans/"+id+"/comparison", map[string]string{
			"uuid": id,
		})
		w := httptest.NewRecorder()

		handler.ComparePlan(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestPlanHandler_UpdatePlan(t *testing.T) {
	setupHandler := func(t *testing.T) (*PlanHandler, *service.PlanService, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPlanService(t, db)
		return NewPlanHandler(ps), ps, db
	}

	t.Run("renames the snapshot", func(t *testing.T) {
		handler, ps, db := setupHandler(t)

		testutil.NewAsset().WithCurrentValue(10000).Build(t, db)
		created, err := ps.CreatePlanSnapshot("Old", "")
		if err != nil {
			t.Fatalf("Failed to create plan snapshot: %v", err)
		}

		name := "New"
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/plans/"+created.ID, request.UpdatePlanSnapshotRequest{
			Name: &name,
		})
		req = testutil.WithURLParams(req, map[string]string{"uuid": created.ID})
		w := httptest.NewRecorder()

		handler.UpdatePlan(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var plan model.PlanSnapshot
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&plan)

		if plan.Name != "New" {
			t.Errorf("Expected renamed snapshot, got '%s'", plan.Name)
		}
	})

	t.Run("returns 404 for unknown snapshot", func(t *testing.T) {
		handler, _, _ := setupHandler(t)

		id := testutil.MakeID()
		name := "New"
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/plans/"+id, request.UpdatePlanSnapshotRequest{
			Name: &name,
		})
		req = testutil.WithURLParams(req, map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.UpdatePlan(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
