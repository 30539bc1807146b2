// Package main provides leaguectl, the league administration CLI.
package main

import (
	"log"
	"os"

	"gorm.io/gorm"

	appConfig "github.com/festy23/veterans_league/internal/config"
	"github.com/festy23/veterans_league/internal/database/database"
	"github.com/festy23/veterans_league/pkg/logger"
)

func main() {
	if err := appConfig.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	connect := func() (*gorm.DB, func() error, error) {
		db, err := database.New(zapLogger)
		if err != nil {
			return nil, nil, err
		}
		return db, func() error { return database.Close(db) }, nil
	}

	if err := newApp(connect, zapLogger).Run(os.Args); err != nil {
		zapLogger.Fatalw("command failed", "error", err)
	}
}
