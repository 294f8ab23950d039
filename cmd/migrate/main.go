package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/labworks/backend/internal/infrastructure/config"
	"github.com/labworks/backend/internal/infrastructure/logger"
	"github.com/labworks/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Standalone migration runner. The server migrates on startup too; this
// exists for deploy pipelines that prepare the database ahead of a rollout.
func main() {
	var (
		dbPath   string
		logLevel string
	)

	flag.StringVar(&dbPath, "db", "", "Path to SQLite database (default: from config)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if dbPath == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal("Failed to load configuration", zap.Error(err))
		}
		dbPath = cfg.Database.Path
	}

	db, err := persistence.Open(dbPath)
	if err != nil {
		log.Fatal("Failed to open database", zap.String("path", dbPath), zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migration complete", zap.String("path", dbPath))
}
