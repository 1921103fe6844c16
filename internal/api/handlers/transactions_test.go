package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/patrimonio/wealth-backend/internal/api/request"
	"github.com/patrimonio/wealth-backend/internal/engine"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/testutil"
)

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	setupHandler := func(t *testing.T) (*TransactionHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)
		return NewTransactionHandler(ts), db
	}

	t.Run("creates a ledger entry", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transactions", request.CreateTransactionRequest{
			Date:        "2025-04-01",
			Amount:      -250,
			Description: "Insurance",
		})
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var created model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&created)

		if created.ID == "" {
			t.Error("Expected created transaction to carry an ID")
		}
		if !created.AffectsAssetValue {
			t.Error("Expected affectsAssetValue to default to true")
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transactions", request.CreateTransactionRequest{
			Date:   "01-04-2025",
			Amount: 100,
		})
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for an unknown linked asset", func(t *testing.T) {
		handler, _ := setupHandler(t)

		missing := testutil.MakeID()
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transactions", request.CreateTransactionRequest{
			Date:    "2025-04-01",
			Amount:  100,
			AssetID: &missing,
		})
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTransactionHandler_Ledger(t *testing.T) {
	setupHandler := func(t *testing.T) (*TransactionHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)
		return NewTransactionHandler(ts), db
	}

	t.Run("returns running balances in date order", func(t *testing.T) {
		handler, db := setupHandler(t)

		base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		testutil.NewTransaction(base, 1000).Build(t, db)
		testutil.NewTransaction(base.AddDate(0, 0, 1), -400).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/transactions/ledger", nil)
		w := httptest.NewRecorder()

		handler.Ledger(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var entries []engine.BalanceEntry
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&entries)

		if len(entries) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(entries))
		}
		if entries[1].Balance != 600 {
			t.Errorf("Expected final balance 600, got %f", entries[1].Balance)
		}
	})

	t.Run("rejects a malformed asset filter", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transactions/ledger", map[string]string{
			"assetId": "not-a-uuid",
		})
		w := httptest.NewRecorder()

		handler.Ledger(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transactions/ledger", map[string]string{
			"startDate": "2025-06-01",
			"endDate":   "2025-01-01",
		})
		w := httptest.NewRecorder()

		handler.Ledger(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
