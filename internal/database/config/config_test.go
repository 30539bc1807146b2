package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT", "DB_SSLMODE", "DB_TIMEZONE"} {
			t.Setenv(key, "")
		}

		cfg := LoadConfigFromEnv()
		expected := Config{
			Host:     "localhost",
			User:     "postgres",
			Password: "postgres",
			DBName:   "veterans_league",
			Port:     "5432",
			SSLMode:  "disable",
			TimeZone: "Europe/Madrid",
		}
		assert.Equal(t, expected, cfg)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_USER", "league")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "league_test")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("DB_TIMEZONE", "UTC")

		cfg := LoadConfigFromEnv()
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, "league", cfg.User)
		assert.Equal(t, "secret", cfg.Password)
		assert.Equal(t, "league_test", cfg.DBName)
		assert.Equal(t, "6543", cfg.Port)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, "UTC", cfg.TimeZone)
	})
}

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		User:     "postgres",
		Password: "postgres",
		DBName:   "veterans_league",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
	assert.Equal(t,
		"host=localhost user=postgres password=postgres dbname=veterans_league port=5432 sslmode=disable TimeZone=UTC",
		BuildDSN(cfg))
}

func TestSanitizeError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, SanitizeError(nil, Config{}))
	})

	t.Run("password removed", func(t *testing.T) {
		cfg := Config{Host: "h", User: "u", Password: "hunter2", DBName: "d", Port: "5432"}
		err := SanitizeError(errors.New("cannot connect with "+BuildDSN(cfg)), cfg)
		assert.NotContains(t, err.Error(), "hunter2")
		assert.Contains(t, err.Error(), "password=***")
		assert.Contains(t, err.Error(), "failed to connect to database")
	})

	t.Run("empty password leaves message intact", func(t *testing.T) {
		err := SanitizeError(errors.New("refused"), Config{})
		assert.Equal(t, "failed to connect to database: refused", err.Error())
	})
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("DB_RETRY_INITIAL_DELAY", "250ms")
	t.Setenv("DB_RETRY_MAX_DELAY", "")
	t.Setenv("DB_RETRY_MULTIPLIER", "1.5")

	cfg := LoadRetryConfigFromEnv()
	assert.Equal(t, 7, cfg.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 30*time.Second, cfg.MaxDelay)
	assert.Equal(t, 1.5, cfg.Multiplier)
	assert.NotEmpty(t, cfg.RetryableErrors)
}

func TestLoadPoolConfigFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "10")
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")
	t.Setenv("DB_CONN_MAX_LIFETIME", "1m")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "")

	cfg := LoadPoolConfigFromEnv()
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, cfg.ConnMaxIdleTime)
}
