package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PierrunoYT/financeflow/models"
)

// ConnectDB opens the database selected by the configuration and migrates the
// schema. The returned handle is passed to the handlers explicitly; there is
// no package-level connection.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		// Foreign keys are off by default in sqlite; without them the
		// RESTRICT constraint on category references would be ignored.
		dialector = sqlite.Open(cfg.SQLitePath + "?_foreign_keys=on")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Transaction{}, &models.Budget{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	slog.Info("database ready", "driver", db.Dialector.Name())
	return db, nil
}
