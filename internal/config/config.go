package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Forecast    ForecastConfig
	Provider    ProviderConfig
	Persistence PersistenceConfig
	Security    SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	LogLevel         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
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
	AutoMigrate     bool
	MigrationsPath  string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ForecastConfig controls projection length and the guard around the price provider
type ForecastConfig struct {
	Horizon                int
	Period                 time.Duration
	HistoryRange           string
	ProviderTimeout        time.Duration
	BreakerMaxFailures     int
	BreakerResetTimeout    time.Duration
	BreakerHalfOpenMaxSucc int
}

type ProviderConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
	UserAgent   string
}

// PersistenceConfig schedules the background flush of pending ledger entries
type PersistenceConfig struct {
	RetryEnabled  bool
	RetrySchedule string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverPostgres),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "fintrack"),
			Password:        getEnv("DB_PASSWORD", "fintrack"),
			Name:            getEnv("DB_NAME", "fintrack"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "fintrack.db"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Forecast: ForecastConfig{
			Horizon:                getIntEnv("FORECAST_HORIZON", 30),
			Period:                 getDurationEnv("FORECAST_PERIOD", 24*time.Hour),
			HistoryRange:           getEnv("FORECAST_HISTORY_RANGE", "1y"),
			ProviderTimeout:        getDurationEnv("FORECAST_PROVIDER_TIMEOUT", 10*time.Second),
			BreakerMaxFailures:     getIntEnv("FORECAST_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout:    getDurationEnv("FORECAST_BREAKER_RESET_TIMEOUT", 30*time.Second),
			BreakerHalfOpenMaxSucc: getIntEnv("FORECAST_BREAKER_HALF_OPEN_SUCCESSES", 2),
		},
		Provider: ProviderConfig{
			BaseURL:     getEnv("PRICE_PROVIDER_BASE_URL", "https://query1.finance.yahoo.com"),
			HTTPTimeout: getDurationEnv("PRICE_PROVIDER_HTTP_TIMEOUT", 15*time.Second),
			UserAgent:   getEnv("PRICE_PROVIDER_USER_AGENT", "Mozilla/5.0 (compatible; fintrack/1.0)"),
		},
		Persistence: PersistenceConfig{
			RetryEnabled:  getBoolEnv("PERSISTENCE_RETRY_ENABLED", true),
			RetrySchedule: getEnv("PERSISTENCE_RETRY_SCHEDULE", "@every 1m"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate rejects settings the services cannot run with
func (c *Config) Validate() error {
	if c.Forecast.Horizon < 1 {
		return fmt.Errorf("FORECAST_HORIZON must be at least 1, got %d", c.Forecast.Horizon)
	}
	if c.Forecast.Period <= 0 {
		return fmt.Errorf("FORECAST_PERIOD must be positive, got %s", c.Forecast.Period)
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
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

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
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
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
