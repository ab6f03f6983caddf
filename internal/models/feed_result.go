package models

import (
	"encoding/json"
	"time"
)

// FeedResult is what the transaction feed currently holds
type FeedResult struct {
	Loading      bool
	Data         json.RawMessage
	FetchedAt    time.Time
	FromSnapshot bool
}
