package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQL database behind the sqlite and postgres storage
// backends.
func Connect(env Environment) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch env.StorageBackend {
	case BackendPostgres:
		dialector = postgres.Open(env.DBURL)
	case BackendSQLite:
		if err := os.MkdirAll(env.StoragePath, 0o755); err != nil {
			return nil, fmt.Errorf("config: create storage dir: %w", err)
		}
		dialector = sqlite.Open(filepath.Join(env.StoragePath, "nodebook.db"))
	default:
		return nil, fmt.Errorf("config: backend %q has no database", env.StorageBackend)
	}

	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if env.IsDevelopment {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("config: failed to connect database: %w", err)
	}
	return db, nil
}
