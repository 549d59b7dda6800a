package database

import (
	"fmt"
	"log/slog"
	"os"

	"bloodbank-backend/internal/config"
	"bloodbank-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true, // unique ihlali -> gorm.ErrDuplicatedKey
	})
	if err != nil {
		slog.Error("could not connect to database", "err", err)
		os.Exit(1)
	}

	if err := Migrate(DB); err != nil {
		slog.Error("auto migrate failed", "err", err)
		os.Exit(1)
	}

	if cfg.SeedSampleData {
		if err := SeedSampleData(DB, nowFunc()); err != nil {
			slog.Error("sample data could not be loaded", "err", err)
			os.Exit(1)
		}
	}

	slog.Info("database connection ready, migration completed")
}

// Migrate: tüm tabloları oluşturur / günceller
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Location{},
		&models.BloodUnit{},
		&models.ExpiryAlert{},
		&models.Transportation{},
		&models.User{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
