package database

import (
	"fmt"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to Postgres when databaseURL is set and to the SQLite file at
// dataPath otherwise, then migrates the schema.
func Open(databaseURL, dataPath string, logger zerolog.Logger) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	if databaseURL != "" {
		gormCfg.PrepareStmt = false
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  databaseURL,
			PreferSimpleProtocol: true,
		}), gormCfg)
		logger.Info().Str("driver", "postgres").Msg("opening database")
	} else {
		if dataPath == "" {
			dataPath = "shifts.db"
		}
		db, err = gorm.Open(sqlite.Open(dataPath), gormCfg)
		logger.Info().Str("driver", "sqlite").Str("path", dataPath).Msg("opening database")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.ShiftRequest{}, &models.Staff{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
