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

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Single-row profile table; payload is an encrypted JSON blob
		CREATE TABLE user_profile (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);

		-- Holding table
		CREATE TABLE holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(10) NOT NULL,
			name VARCHAR(255),
			security_type VARCHAR(12) NOT NULL,
			quantity FLOAT NOT NULL,
			purchase_price FLOAT NOT NULL,
			purchase_date DATE NOT NULL,
			current_price FLOAT,
			last_updated DATETIME NOT NULL
		);

		-- Goal table
		CREATE TABLE goal (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			category VARCHAR(12) NOT NULL,
			target_amount FLOAT NOT NULL,
			current_amount FLOAT NOT NULL,
			target_date DATE NOT NULL,
			priority VARCHAR(6) NOT NULL,
			monthly_contribution FLOAT NOT NULL,
			created_at DATETIME NOT NULL
		);

		-- Recommendation table
		CREATE TABLE recommendation (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			type VARCHAR(20) NOT NULL,
			priority VARCHAR(6) NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			reasoning TEXT NOT NULL,
			risk_reduction FLOAT NOT NULL DEFAULT 0,
			return_improvement FLOAT NOT NULL DEFAULT 0,
			goal_acceleration FLOAT NOT NULL DEFAULT 0,
			difficulty VARCHAR(10) NOT NULL,
			status VARCHAR(12) NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		-- Action items attached to recommendations
		CREATE TABLE recommendation_action_item (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			recommendation_id VARCHAR(36) NOT NULL,
			description TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			position INTEGER NOT NULL,
			FOREIGN KEY(recommendation_id) REFERENCES recommendation(id) ON DELETE CASCADE
		);

		CREATE INDEX ix_holding_symbol ON holding(symbol);
		CREATE INDEX ix_goal_target_date ON goal(target_date);
		CREATE INDEX ix_recommendation_status ON recommendation(status);
		CREATE INDEX ix_action_item_recommendation_id ON recommendation_action_item(recommendation_id);
	`

	_, err := db.Exec(schema)
	return err
}
