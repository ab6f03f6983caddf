package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedSnapshot is the last good copy of the remote transaction feed
type FeedSnapshot struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Source      string    `gorm:"type:varchar(500);not null" json:"source"`
	RecordCount int       `gorm:"not null;default:0" json:"record_count"`
	FetchedAt   time.Time `gorm:"not null;index" json:"fetched_at"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`

	Records []StoredRecord `gorm:"foreignKey:SnapshotID;constraint:OnDelete:CASCADE" json:"-"`
}

// StoredRecord is one feed record kept inside a snapshot, in feed order
type StoredRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SnapshotID    uuid.UUID `gorm:"type:uuid;not null;index" json:"snapshot_id"`
	Position      int       `gorm:"not null" json:"position"`
	TransactionID string    `gorm:"type:varchar(100);index" json:"transaction_id"`
	RecordDate    string    `gorm:"type:varchar(64)" json:"record_date"`
	Payload       string    `gorm:"type:text;not null" json:"payload"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (*FeedSnapshot) TableName() string {
	return "feed_snapshots"
}

func (*StoredRecord) TableName() string {
	return "transaction_records"
}

func (s *FeedSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now()
	if s.FetchedAt.IsZero() {
		s.FetchedAt = now
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	return nil
}

func (r *StoredRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return nil
}
