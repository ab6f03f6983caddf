package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultDemoRecordCount = 100
	DefaultDemoDays        = 90
)

// DemoSnapshotQuery sizes a generated demo snapshot
type DemoSnapshotQuery struct {
	Count int `query:"count" validate:"min=1,max=1000"`
	Days  int `query:"days" validate:"min=1,max=365"`
}

// DemoSnapshotResponse describes the stored demo snapshot
type DemoSnapshotResponse struct {
	SnapshotID     uuid.UUID `json:"snapshotId"`
	RecordsCreated int       `json:"recordsCreated"`
	Earliest       string    `json:"earliest,omitempty"`
	Latest         string    `json:"latest,omitempty"`
	FetchedAt      time.Time `json:"fetchedAt"`
}
