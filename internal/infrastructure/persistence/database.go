package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/labworks/backend/internal/domain/crm"
	"github.com/labworks/backend/internal/domain/proposal"
	"github.com/labworks/backend/internal/domain/timetracker"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the database connection and provides methods for database
// operations. The whole application shares one handle; SQLite serializes
// writes internally.
type Database struct {
	DB *gorm.DB
}

// Open opens (creating if necessary) the SQLite database file at path
func Open(path string) (*Database, error) {
	return OpenWithLogger(path, logger.Default.LogMode(logger.Silent))
}

// OpenWithLogger opens the database with a custom GORM logger
func OpenWithLogger(path string, gormLogger logger.Interface) (*Database, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Migrate creates any missing tables. Foreign keys are declared but not
// enforced: deleting a client intentionally leaves dependent rows behind.
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
		&crm.Client{},
		&crm.Project{},
		&crm.ContactNote{},
		&timetracker.TimeEntry{},
		&timetracker.Invoice{},
		&proposal.Proposal{},
	)
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
