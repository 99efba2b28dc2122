package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FORECAST_HORIZON", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, 30, cfg.Forecast.Horizon)
	assert.Equal(t, 24*time.Hour, cfg.Forecast.Period)
	assert.Equal(t, 10*time.Second, cfg.Forecast.ProviderTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FORECAST_HORIZON", "7")
	t.Setenv("FORECAST_PERIOD", "1h")
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("PERSISTENCE_RETRY_ENABLED", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.Equal(t, 7, cfg.Forecast.Horizon)
	assert.Equal(t, time.Hour, cfg.Forecast.Period)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.False(t, cfg.Persistence.RetryEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("FORECAST_HORIZON", "many")
	t.Setenv("FORECAST_PERIOD", "soon")
	t.Setenv("AUTO_MIGRATE", "perhaps")

	cfg := Load()

	assert.Equal(t, 30, cfg.Forecast.Horizon)
	assert.Equal(t, 24*time.Hour, cfg.Forecast.Period)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero horizon", func(c *Config) { c.Forecast.Horizon = 0 }, "FORECAST_HORIZON"},
		{"negative period", func(c *Config) { c.Forecast.Period = -time.Second }, "FORECAST_PERIOD"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "unsupported DB_DRIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "n", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=require", cfg.DSN())
}
