package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "github.com/condiments/condiments-api/internal/domain/auth/model"
	entityModel "github.com/condiments/condiments-api/internal/domain/entity/model"
	"github.com/condiments/condiments-api/internal/infra/config"
	"github.com/condiments/condiments-api/internal/infra/migrate"
)

// Open connects with the configured driver and brings the schema up to date:
// embedded migrations on postgres, AutoMigrate on sqlite.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	switch cfg.DatabaseDriver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("db handle: %w", err)
		}
		// every new connection to :memory: would see an empty database
		sqlDB.SetMaxOpenConns(1)
		if err := db.AutoMigrate(&authModel.User{}, &entityModel.AssignedEntity{}); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		return db, nil

	case "postgres", "":
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("db handle: %w", err)
		}
		if err := migrate.Up(sqlDB); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
