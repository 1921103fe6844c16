package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory
	// database.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE security (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			ticker VARCHAR(20) NOT NULL UNIQUE,
			currency VARCHAR(10) NOT NULL DEFAULT 'EUR',
			security_type VARCHAR(20) NOT NULL DEFAULT 'stock',
			current_price REAL,
			price_updated_at TEXT
		);

		CREATE TABLE asset (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			category VARCHAR(30) NOT NULL,
			subcategory VARCHAR(50),
			status VARCHAR(20) NOT NULL DEFAULT 'Active',
			currency VARCHAR(10) NOT NULL DEFAULT 'EUR',
			current_value REAL,
			purchase_price REAL NOT NULL DEFAULT 0,
			purchase_date TEXT,
			profit_loss_value REAL,
			appreciation_type VARCHAR(15) NOT NULL DEFAULT 'appreciates',
			annual_rate_percent REAL,
			consider_appreciation BOOLEAN NOT NULL DEFAULT TRUE,
			notes TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE TABLE market_holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			asset_id VARCHAR(36) NOT NULL REFERENCES asset(id) ON DELETE CASCADE,
			name VARCHAR(100) NOT NULL,
			security_id VARCHAR(36) REFERENCES security(id) ON DELETE SET NULL,
			quantity REAL NOT NULL DEFAULT 0,
			currency VARCHAR(10) NOT NULL DEFAULT 'EUR',
			current_value REAL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE TABLE wealth_transaction (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category VARCHAR(50),
			amount REAL NOT NULL,
			asset_id VARCHAR(36) REFERENCES asset(id) ON DELETE SET NULL,
			affects_asset_value BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT NOT NULL
		);

		CREATE TABLE plan_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			snapshot_date TEXT NOT NULL,
			name VARCHAR(100) NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			projected_3m REAL,
			projected_6m REAL,
			projected_1y REAL,
			total_value_at_snapshot REAL,
			cashflow_snapshot TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL
		);

		CREATE TABLE portfolio_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			snapshot_date TEXT NOT NULL UNIQUE,
			total_value REAL NOT NULL,
			total_pl REAL NOT NULL,
			average_yield REAL,
			asset_count INTEGER NOT NULL,
			allocation_by_category TEXT,
			created_at TEXT NOT NULL
		);

		CREATE TABLE app_setting (
			key VARCHAR(50) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL,
			encrypted BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
