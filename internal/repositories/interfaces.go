package repositories

import (
	"rewards-dashboard/internal/models"
)

// FeedSnapshotRepositoryInterface defines the contract for storing the last good transaction feed
type FeedSnapshotRepositoryInterface interface {
	// SaveSnapshot stores records as the newest snapshot and removes older ones
	SaveSnapshot(snapshot *models.FeedSnapshot, records []models.TransactionRecord) error
	// GetLatest returns the newest snapshot and its records in feed order
	GetLatest() (*models.FeedSnapshot, []models.TransactionRecord, error)
	// CountSnapshots returns the number of stored snapshots
	CountSnapshots() (int64, error)
}
