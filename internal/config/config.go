package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultFeedURL = "https://6915d19e465a9144626db46a.mockapi.io/api/v1/rewards/allTransactions"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Feed     FeedConfig
	Filter   FilterConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	LogLevel         string
	LogFormat        string
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrationsPath  string
	SeedDatabase    bool
	SeedsPath       string
}

// FeedConfig configures the remote transaction feed
type FeedConfig struct {
	URL                   string
	APIKey                string
	Timeout               time.Duration
	RefreshInterval       time.Duration
	BreakerMaxFailures    int
	BreakerResetTimeout   time.Duration
	SnapshotFallbackOnErr bool
}

// FilterConfig configures date filtering
type FilterConfig struct {
	WindowMonths int
	TimeZone     string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			LogFormat:    getEnv("LOG_FORMAT", "json"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverSQLite),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "rewards_user"),
			Password:        getEnv("DB_PASSWORD", "rewards_password"),
			Name:            getEnv("DB_NAME", "rewards_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "rewards.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			SeedsPath:       getEnv("DB_SEEDS_PATH", "db/seeds"),
		},
		Feed: FeedConfig{
			URL:                   getEnv("FEED_URL", DefaultFeedURL),
			APIKey:                getEnv("FEED_API_KEY", ""),
			Timeout:               getDurationEnv("FEED_TIMEOUT", 10*time.Second),
			RefreshInterval:       getDurationEnv("FEED_REFRESH_INTERVAL", 5*time.Minute),
			BreakerMaxFailures:    getIntEnv("FEED_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout:   getDurationEnv("FEED_BREAKER_RESET_TIMEOUT", 30*time.Second),
			SnapshotFallbackOnErr: getBoolEnv("FEED_SNAPSHOT_FALLBACK", true),
		},
		Filter: FilterConfig{
			WindowMonths: getIntEnv("FILTER_WINDOW_MONTHS", 3),
			TimeZone:     getEnv("FILTER_TIME_ZONE", "Local"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Location resolves the filter time zone, falling back to the local zone
func (c *FilterConfig) Location() *time.Location {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Printf("WARNING: unknown FILTER_TIME_ZONE %q, using local time: %v", c.TimeZone, err)
		return time.Local
	}
	return loc
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
