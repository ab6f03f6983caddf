package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rewards-dashboard/internal/config"
	"rewards-dashboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
	logger *slog.Logger
}

// dialector picks the gorm driver for cfg.Driver
func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite, "":
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func New(cfg *config.DatabaseConfig, log *slog.Logger) (*DB, error) {
	if log == nil {
		log = slog.Default()
	}

	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverPostgres {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	} else {
		// sqlite serialises writers; one connection avoids "database is locked"
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
		logger: log,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.FeedSnapshot{},
		&models.StoredRecord{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_feed_snapshots_fetched_at ON feed_snapshots(fetched_at)",
		"CREATE INDEX IF NOT EXISTS idx_transaction_records_snapshot_position ON transaction_records(snapshot_id, position)",
		"CREATE INDEX IF NOT EXISTS idx_transaction_records_transaction_id ON transaction_records(transaction_id) WHERE transaction_id <> ''",
	}

	var failed int
	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			failed++
			db.logger.Warn("failed to create index", "query", query, "error", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d indexes could not be created", failed, len(queries))
	}
	return nil
}

// Initialize opens the configured database and brings its schema up to date.
// Postgres uses the SQL migrations when AUTO_MIGRATE is set and falls back to
// gorm AutoMigrate; sqlite always uses AutoMigrate.
func Initialize(cfg *config.Config, log *slog.Logger) (*DB, error) {
	db, err := New(&cfg.Database, log)
	if err != nil {
		return nil, err
	}

	migrated := false
	if cfg.Database.Driver == config.DriverPostgres && cfg.Database.AutoMigrate {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		runner := NewMigrationRunner(sqlDB, &cfg.Database, db.logger)
		if err := runner.Run(context.Background()); err != nil {
			db.logger.Warn("migration runner failed, falling back to gorm AutoMigrate", "error", err)
		} else {
			migrated = true
		}
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		db.logger.Warn("failed to create some indexes", "error", err)
	}

	db.logger.Info("database initialized", "driver", cfg.Database.Driver)

	return db, nil
}
