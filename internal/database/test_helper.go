package database

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"rewards-dashboard/internal/config"
	"rewards-dashboard/internal/models"
)

// SetupTestDB opens a migrated in-memory sqlite database and closes it when t ends
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: ":memory:",
	}

	db, err := New(cfg, slog.Default())
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// CreateTestSnapshot stores a snapshot with n stored records fetched at fetchedAt
func CreateTestSnapshot(t *testing.T, db *DB, n int, fetchedAt time.Time) *models.FeedSnapshot {
	t.Helper()

	snapshot := &models.FeedSnapshot{
		Source:      "test",
		RecordCount: n,
		FetchedAt:   fetchedAt,
	}
	if err := db.Create(snapshot).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}

	for i := 0; i < n; i++ {
		record := &models.StoredRecord{
			SnapshotID:    snapshot.ID,
			Position:      i,
			TransactionID: fmt.Sprintf("TX-%03d", i),
			RecordDate:    fetchedAt.Format("2006-01-02"),
			Payload:       fmt.Sprintf(`{"transactionId":"TX-%03d"}`, i),
		}
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("failed to create test record: %v", err)
		}
	}

	return snapshot
}

// CleanupTestDB empties the snapshot tables
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"transaction_records", "feed_snapshots"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
