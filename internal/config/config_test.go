package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"FEED_URL", "FEED_TIMEOUT", "DB_DRIVER", "FILTER_WINDOW_MONTHS", "CORS_ALLOW_ORIGINS", "APP_ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DefaultFeedURL, cfg.Feed.URL)
	assert.Equal(t, 10*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Filter.WindowMonths)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("FEED_URL", "http://feed.internal/transactions")
	t.Setenv("FEED_TIMEOUT", "3s")
	t.Setenv("FEED_SNAPSHOT_FALLBACK", "false")
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("FILTER_WINDOW_MONTHS", "6")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, "http://feed.internal/transactions", cfg.Feed.URL)
	assert.Equal(t, 3*time.Second, cfg.Feed.Timeout)
	assert.False(t, cfg.Feed.SnapshotFallbackOnErr)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 6, cfg.Filter.WindowMonths)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("FEED_TIMEOUT", "soon")
	t.Setenv("FILTER_WINDOW_MONTHS", "three")
	t.Setenv("FEED_SNAPSHOT_FALLBACK", "maybe")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, 3, cfg.Filter.WindowMonths)
	assert.True(t, cfg.Feed.SnapshotFallbackOnErr)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
}

func TestFilterConfig_Location(t *testing.T) {
	assert.Equal(t, time.Local, (&FilterConfig{TimeZone: "Local"}).Location())
	assert.Equal(t, time.Local, (&FilterConfig{TimeZone: "Nowhere/Invalid"}).Location())
	assert.Equal(t, "UTC", (&FilterConfig{TimeZone: "UTC"}).Location().String())
}
