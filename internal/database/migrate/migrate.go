// Package migrate applies the league schema migrations with golang-migrate.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	appConfig "github.com/festy23/veterans_league/internal/config"
)

// GetMigrationsPath returns the migrations directory from MIGRATIONS_PATH.
func GetMigrationsPath() string {
	return appConfig.GetEnv("MIGRATIONS_PATH", "migrations")
}

// Migrate applies all pending migrations from the configured directory.
func Migrate(db *gorm.DB) error {
	return Up(db, GetMigrationsPath())
}

// Up applies all pending migrations found in dir.
func Up(db *gorm.DB, dir string) error {
	m, err := newMigrator(db, dir)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Down rolls back the given number of migrations.
func Down(db *gorm.DB, dir string, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be greater than 0")
	}
	m, err := newMigrator(db, dir)
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

// Version returns the applied schema version and whether it is dirty.
func Version(db *gorm.DB, dir string) (uint, bool, error) {
	m, err := newMigrator(db, dir)
	if err != nil {
		return 0, false, err
	}
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func newMigrator(db *gorm.DB, dir string) (*migrate.Migrate, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	path, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return nil, fmt.Errorf("migrations directory does not exist: %s", path)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}
