package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rewards-dashboard/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, cfg config.DatabaseConfig) (*MigrationRunner, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewMigrationRunner(db, &cfg, nil), mock
}

func fastRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 50 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func writeSeed(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := &config.DatabaseConfig{MigrationsPath: "db/migrations", SeedsPath: "db/seeds", SeedDatabase: true}
	runner := NewMigrationRunner(db, cfg, nil)

	assert.Equal(t, db, runner.db)
	assert.Equal(t, "db/migrations", runner.migrationsPath)
	assert.Equal(t, "db/seeds", runner.seedsPath)
	assert.True(t, runner.seed)
	assert.NotNil(t, runner.logger)
}

func TestWaitForDatabase_Success(t *testing.T) {
	runner, mock := newTestRunner(t, config.DatabaseConfig{})
	mock.ExpectPing()

	err := runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	fastRetries(t, 3)
	runner, mock := newTestRunner(t, config.DatabaseConfig{})
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	start := time.Now()
	err := runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), retryInterval)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	fastRetries(t, 2)
	runner, mock := newTestRunner(t, config.DatabaseConfig{})
	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err := runner.WaitForDatabase(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
}

func TestWaitForDatabase_ContextCancelled(t *testing.T) {
	fastRetries(t, 5)
	runner, mock := newTestRunner(t, config.DatabaseConfig{})
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.WaitForDatabase(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	runner, _ := newTestRunner(t, config.DatabaseConfig{MigrationsPath: "/nonexistent/path/to/migrations"})

	assert.NoError(t, runner.RunMigrations())
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	runner, _ := newTestRunner(t, config.DatabaseConfig{MigrationsPath: "/nonexistent/migrations"})

	_, _, err := runner.GetMigrationStatus()

	assert.ErrorIs(t, err, errMigrationsNotFound)
}

func TestLoadSeeds_Disabled(t *testing.T) {
	runner, mock := newTestRunner(t, config.DatabaseConfig{SeedsPath: t.TempDir(), SeedDatabase: false})

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_DirectoryNotFound(t *testing.T) {
	runner, _ := newTestRunner(t, config.DatabaseConfig{SeedsPath: "/nonexistent/seeds/path", SeedDatabase: true})

	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeeds_NoSeedFiles(t *testing.T) {
	runner, mock := newTestRunner(t, config.DatabaseConfig{SeedsPath: t.TempDir(), SeedDatabase: true})

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ExecutesInNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "002_records.sql", "INSERT INTO transaction_records (id) VALUES ('r1');")
	writeSeed(t, dir, "001_snapshot.sql", "INSERT INTO feed_snapshots (id) VALUES ('s1');")
	writeSeed(t, dir, "notes.txt", "ignored")

	runner, mock := newTestRunner(t, config.DatabaseConfig{SeedsPath: dir, SeedDatabase: true})
	mock.ExpectExec("INSERT INTO feed_snapshots").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transaction_records").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ExecutionFailureIsContinued(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "001_bad.sql", "INSERT INTO nonexistent_table VALUES (1);")
	writeSeed(t, dir, "002_good.sql", "INSERT INTO feed_snapshots (id) VALUES ('s1');")

	runner, mock := newTestRunner(t, config.DatabaseConfig{SeedsPath: dir, SeedDatabase: true})
	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO feed_snapshots").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "001_invalid.sql"), 0o755))

	runner, _ := newTestRunner(t, config.DatabaseConfig{SeedsPath: dir, SeedDatabase: true})

	err := runner.LoadSeeds()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestRun_DatabaseNotReady(t *testing.T) {
	fastRetries(t, 2)
	runner, mock := newTestRunner(t, config.DatabaseConfig{MigrationsPath: "/nonexistent"})
	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err := runner.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestRun_NoMigrationsDirectory(t *testing.T) {
	runner, mock := newTestRunner(t, config.DatabaseConfig{MigrationsPath: "/nonexistent"})
	mock.ExpectPing()

	assert.NoError(t, runner.Run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
