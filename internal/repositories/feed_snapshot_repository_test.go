package repositories

import (
	"testing"
	"time"

	"rewards-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// FeedSnapshotRepositoryTestSuite is the test suite for the feed snapshot repository
type FeedSnapshotRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo FeedSnapshotRepositoryInterface
}

// SetupTest runs before each test
func (s *FeedSnapshotRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.FeedSnapshot{}, &models.StoredRecord{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewFeedSnapshotRepository(db)
}

// TearDownTest runs after each test
func (s *FeedSnapshotRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestFeedSnapshotRepositoryTestSuite runs the test suite
func TestFeedSnapshotRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FeedSnapshotRepositoryTestSuite))
}

func (s *FeedSnapshotRepositoryTestSuite) createTestRecords(n int) []models.TransactionRecord {
	records := make([]models.TransactionRecord, n)
	for i := range records {
		records[i] = models.TransactionRecord{
			TransactionID: gofakeit.UUID(),
			CustomerName:  gofakeit.Name(),
			Date:          gofakeit.Date().Format("2006-01-02"),
			Price:         decimal.NewFromFloat(gofakeit.Float64Range(1, 500)).Round(2),
			Extra:         models.JSONBMap{"product": gofakeit.ProductName()},
		}
	}
	return records
}

// TestSaveSnapshot_NilSnapshot tests saving a nil snapshot
func (s *FeedSnapshotRepositoryTestSuite) TestSaveSnapshot_NilSnapshot() {
	err := s.repo.SaveSnapshot(nil, nil)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "snapshot cannot be nil")
}

// TestSaveSnapshot_RoundTrip tests that records come back in feed order with all fields
func (s *FeedSnapshotRepositoryTestSuite) TestSaveSnapshot_RoundTrip() {
	records := s.createTestRecords(5)
	snapshot := &models.FeedSnapshot{Source: "http://feed.test"}

	require.NoError(s.T(), s.repo.SaveSnapshot(snapshot, records))
	assert.Equal(s.T(), 5, snapshot.RecordCount)
	assert.False(s.T(), snapshot.FetchedAt.IsZero())

	latest, got, err := s.repo.GetLatest()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), snapshot.ID, latest.ID)
	require.Len(s.T(), got, 5)

	for i := range records {
		assert.Equal(s.T(), records[i].TransactionID, got[i].TransactionID)
		assert.Equal(s.T(), records[i].CustomerName, got[i].CustomerName)
		assert.Equal(s.T(), records[i].Date, got[i].Date)
		assert.True(s.T(), records[i].Price.Equal(got[i].Price))
		assert.Equal(s.T(), records[i].Extra.String("product"), got[i].Extra.String("product"))
	}
}

// TestSaveSnapshot_ReplacesOlderSnapshots tests that only the newest snapshot is kept
func (s *FeedSnapshotRepositoryTestSuite) TestSaveSnapshot_ReplacesOlderSnapshots() {
	first := &models.FeedSnapshot{Source: "http://feed.test", FetchedAt: time.Now().Add(-time.Hour)}
	require.NoError(s.T(), s.repo.SaveSnapshot(first, s.createTestRecords(3)))

	second := &models.FeedSnapshot{Source: "http://feed.test", FetchedAt: time.Now()}
	newest := s.createTestRecords(2)
	require.NoError(s.T(), s.repo.SaveSnapshot(second, newest))

	count, err := s.repo.CountSnapshots()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), count)

	var storedCount int64
	require.NoError(s.T(), s.db.Model(&models.StoredRecord{}).Count(&storedCount).Error)
	assert.Equal(s.T(), int64(2), storedCount)

	latest, got, err := s.repo.GetLatest()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), second.ID, latest.ID)
	require.Len(s.T(), got, 2)
	assert.Equal(s.T(), newest[0].TransactionID, got[0].TransactionID)
}

// TestSaveSnapshot_EmptyFeed tests that an empty feed is a valid snapshot
func (s *FeedSnapshotRepositoryTestSuite) TestSaveSnapshot_EmptyFeed() {
	require.NoError(s.T(), s.repo.SaveSnapshot(&models.FeedSnapshot{Source: "http://feed.test"}, nil))

	latest, got, err := s.repo.GetLatest()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0, latest.RecordCount)
	assert.Empty(s.T(), got)
}

// TestGetLatest_NotFound tests reading before any snapshot exists
func (s *FeedSnapshotRepositoryTestSuite) TestGetLatest_NotFound() {
	latest, records, err := s.repo.GetLatest()
	assert.ErrorIs(s.T(), err, ErrSnapshotNotFound)
	assert.Nil(s.T(), latest)
	assert.Nil(s.T(), records)
}
