package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"rewards-dashboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSnapshotNotFound = errors.New("feed snapshot not found")
)

const snapshotBatchSize = 500

// feedSnapshotRepository implements FeedSnapshotRepositoryInterface
type feedSnapshotRepository struct {
	db *gorm.DB
}

// NewFeedSnapshotRepository creates a new feed snapshot repository
func NewFeedSnapshotRepository(db *gorm.DB) FeedSnapshotRepositoryInterface {
	return &feedSnapshotRepository{
		db: db,
	}
}

// SaveSnapshot stores records as the newest snapshot inside a single database transaction
func (r *feedSnapshotRepository) SaveSnapshot(snapshot *models.FeedSnapshot, records []models.TransactionRecord) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	stored := make([]models.StoredRecord, 0, len(records))
	for i := range records {
		payload, err := json.Marshal(records[i])
		if err != nil {
			return fmt.Errorf("failed to encode record %d: %w", i, err)
		}
		stored = append(stored, models.StoredRecord{
			Position:      i,
			TransactionID: records[i].TransactionID,
			RecordDate:    records[i].Date,
			Payload:       string(payload),
		})
	}
	snapshot.RecordCount = len(stored)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Records").Create(snapshot).Error; err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}

		for i := range stored {
			stored[i].SnapshotID = snapshot.ID
		}
		if len(stored) > 0 {
			if err := tx.CreateInBatches(&stored, snapshotBatchSize).Error; err != nil {
				return fmt.Errorf("failed to create snapshot records: %w", err)
			}
		}

		if err := tx.Where("snapshot_id <> ?", snapshot.ID).Delete(&models.StoredRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete old snapshot records: %w", err)
		}
		if err := tx.Where("id <> ?", snapshot.ID).Delete(&models.FeedSnapshot{}).Error; err != nil {
			return fmt.Errorf("failed to delete old snapshots: %w", err)
		}

		return nil
	})
}

// GetLatest retrieves the newest snapshot with its records
func (r *feedSnapshotRepository) GetLatest() (*models.FeedSnapshot, []models.TransactionRecord, error) {
	var snapshot models.FeedSnapshot
	if err := r.db.Order("fetched_at DESC").First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSnapshotNotFound
		}
		return nil, nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	var stored []models.StoredRecord
	if err := r.db.Where("snapshot_id = ?", snapshot.ID).
		Order("position ASC").
		Find(&stored).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to get snapshot records: %w", err)
	}

	records := make([]models.TransactionRecord, 0, len(stored))
	for _, s := range stored {
		var record models.TransactionRecord
		if err := json.Unmarshal([]byte(s.Payload), &record); err != nil {
			return nil, nil, fmt.Errorf("failed to decode snapshot record %s: %w", s.ID, err)
		}
		records = append(records, record)
	}

	return &snapshot, records, nil
}

// CountSnapshots counts stored snapshots
func (r *feedSnapshotRepository) CountSnapshots() (int64, error) {
	var count int64
	if err := r.db.Model(&models.FeedSnapshot{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return count, nil
}
