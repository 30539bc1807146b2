// Package database provides database connection management for PostgreSQL.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/festy23/veterans_league/internal/database/config"
	"github.com/festy23/veterans_league/internal/database/pool"
	"github.com/festy23/veterans_league/pkg/retry"
)

// New connects using DB_* environment variables.
func New(logger *zap.SugaredLogger) (*gorm.DB, error) {
	return NewWithConfig(config.LoadConfigFromEnv(), logger)
}

// NewWithConfig connects with retries and applies the pool settings.
func NewWithConfig(cfg config.Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectTimeout())
	defer cancel()
	return Open(ctx, postgres.Open(config.BuildDSN(cfg)), cfg, config.LoadPoolConfigFromEnv(), logger)
}

// Open opens dialector with connection retries, verifies it with a ping and
// configures the pool.
func Open(
	ctx context.Context,
	dialector gorm.Dialector,
	cfg config.Config,
	poolCfg pool.Config,
	logger *zap.SugaredLogger,
) (*gorm.DB, error) {
	retryCfg := config.LoadRetryConfigFromEnv()
	retryCfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		logger.Warnw("database connection failed, retrying",
			"attempt", attempt,
			"delay", delay,
			"error", config.SanitizeError(err, cfg),
		)
	}

	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
			TranslateError: true,
		})
		if err != nil {
			return nil, err
		}
		if err := HealthCheck(ctx, db); err != nil {
			_ = Close(db)
			return nil, err
		}
		return db, nil
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := pool.SetupConnectionPool(db, poolCfg); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	logger.Infow("database connected", "host", cfg.Host, "database", cfg.DBName)
	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := sqlDB(db)
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close gracefully closes database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := sqlDB(db)
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// GetStats returns database connection pool statistics.
func GetStats(db *gorm.DB) (*sql.DBStats, error) {
	sqlDB, err := sqlDB(db)
	if err != nil {
		return nil, err
	}
	stats := sqlDB.Stats()
	return &stats, nil
}

func sqlDB(db *gorm.DB) (*sql.DB, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB, nil
}
