// Package db opens the emulator database with the configured gorm engine.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dtlpy/dtlpy-go/internal/config"
	"github.com/dtlpy/dtlpy-go/internal/db/dsn"
	"github.com/dtlpy/dtlpy-go/internal/db/models"
)

// Open connects to the configured database and migrates the schema.
func Open(cfg *config.DB) (*gorm.DB, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	var dialector gorm.Dialector

	switch cfg.GormEngine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.MySQL(cfg))
	case config.EnginePostgres:
		dialector = postgres.Open(dsn.Postgres(cfg))
	case config.EngineSQLite, "":
		dialector = sqlite.Open(dsn.SQLite(cfg))
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, cfg.GormEngine)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.GormEngine)
	}

	// every sqlite in-memory connection is a database of its own
	if cfg.Path == "" && (cfg.GormEngine == config.EngineSQLite || cfg.GormEngine == "") {
		sqlDB, sqlErr := db.DB()
		if sqlErr != nil {
			return nil, errors.Wrap(sqlErr, "failed to access sql pool")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	log.Debug().Str("engine", cfg.GormEngine).Msg("database ready")

	return db, nil
}

// Migrate creates or updates the emulator tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
