// Package testutil opens throwaway in-memory databases for package tests.
package testutil

import (
	"testing"

	"bloodbank-backend/internal/database"
	"bloodbank-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns a migrated SQLite database that lives as long as the test.
// A single connection serialises transactions the way row locks would in Postgres.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// UseGlobalDB points database.DB at db for handler tests and restores it afterwards.
func UseGlobalDB(t testing.TB, db *gorm.DB) {
	t.Helper()

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
}

func CreateLocation(t testing.TB, db *gorm.DB, code string, capacity, stock int) models.Location {
	t.Helper()

	loc := models.Location{
		LocationCode:          code,
		LocationName:          code + " Blood Bank",
		LocationType:          "Storage",
		Capacity:              capacity,
		CurrentStock:          stock,
		TemperatureCapability: "2-6C",
	}
	require.NoError(t, db.Create(&loc).Error)
	return loc
}

func StockOf(t testing.TB, db *gorm.DB, code string) int {
	t.Helper()

	var loc models.Location
	require.NoError(t, db.First(&loc, "location_code = ?", code).Error)
	return loc.CurrentStock
}
