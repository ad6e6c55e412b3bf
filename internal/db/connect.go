package db

import (
	"fmt"

	"naebak/content-service/internal/config"
	"naebak/content-service/internal/logging"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Connect opens the GORM pool and the sqlx handle for cfg.DBDriver and runs
// migrations when AUTO_MIGRATE is set.
func Connect(cfg *config.Config) (*gorm.DB, *sqlx.DB, error) {
	var (
		orm   *gorm.DB
		sqlDB *sqlx.DB
		err   error
	)

	switch cfg.DBDriver {
	case "sqlite":
		if orm, err = OpenSQLite(cfg.SQLitePath); err != nil {
			return nil, nil, err
		}
		if sqlDB, err = WrapORM(orm, "sqlite3"); err != nil {
			return nil, nil, err
		}
		logging.Info("Opened sqlite database", "path", cfg.SQLitePath)
	default:
		dsn := cfg.PostgresDSN()
		if orm, err = InitPostgresORM(dsn); err != nil {
			return nil, nil, err
		}
		if sqlDB, err = InitPostgres(dsn); err != nil {
			return nil, nil, err
		}
		logging.Info("Connected to Postgres (sqlx)")
	}

	if cfg.AutoMigrate {
		if err := AutoMigrate(orm); err != nil {
			return nil, nil, fmt.Errorf("auto-migrate: %w", err)
		}
		logging.Info("Schema migrated")
	}
	return orm, sqlDB, nil
}
