package database

import (
	"fmt"
	"log/slog"
	"time"

	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/shelflife"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var nowFunc = time.Now

var sampleLocations = []models.Location{
	{
		LocationCode:          "YGN_MAIN",
		LocationName:          "Yangon Main Blood Bank",
		LocationType:          "Storage",
		Capacity:              1000,
		TemperatureCapability: "2-6C, 20-24C, -18C",
		ContactPerson:         "Dr. Aung Kyaw",
		PhoneNumber:           "+95-1-123456",
	},
	{
		LocationCode:          "MDY_REGIONAL",
		LocationName:          "Mandalay Regional Center",
		LocationType:          "Storage",
		Capacity:              500,
		TemperatureCapability: "2-6C",
		ContactPerson:         "Dr. Mya Mya",
		PhoneNumber:           "+95-2-234567",
	},
}

// SeedSampleData: lokasyon tablosu boşsa örnek lokasyon, ünite ve sevkiyatları yükler.
// İlk 3 ünite 40 gün önce bağışlanmış sayılır, kısa ömürlüler süresi geçmiş olarak gelir.
func SeedSampleData(db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.Model(&models.Location{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count locations: %w", err)
	}
	if count > 0 {
		slog.Debug("sample data skipped, locations already exist", "count", count)
		return nil
	}

	today := shelflife.Day(now)
	bloodTypes := []string{"A+", "B+", "O+", "AB+"}
	products := []string{shelflife.WholeBlood, shelflife.RBC, shelflife.Platelets}

	return db.Transaction(func(tx *gorm.DB) error {
		locations := make([]models.Location, len(sampleLocations))
		copy(locations, sampleLocations)
		if err := tx.Create(&locations).Error; err != nil {
			return fmt.Errorf("create locations: %w", err)
		}

		stock := map[string]int{}
		units := make([]models.BloodUnit, 0, 15)
		for i := 0; i < 15; i++ {
			bloodType := bloodTypes[i%4]
			product := products[i%3]
			code := locations[i%2].LocationCode

			donation := today.AddDate(0, 0, -(i % 20))
			if i < 3 {
				donation = today.AddDate(0, 0, -40)
			}

			units = append(units, models.BloodUnit{
				BloodID:         fmt.Sprintf("%s_%s_%03d", bloodType, product, i),
				BloodType:       bloodType,
				ProductType:     product,
				DonationDate:    datatypes.Date(donation),
				ExpiryDate:      datatypes.Date(shelflife.ExpiryDate(product, donation)),
				CurrentLocation: code,
				TemperatureZone: shelflife.TemperatureZone(product),
				Status:          models.UnitStatusAvailable,
			})
			stock[code]++
		}
		if err := tx.Create(&units).Error; err != nil {
			return fmt.Errorf("create units: %w", err)
		}

		for code, n := range stock {
			if err := tx.Model(&models.Location{}).
				Where("location_code = ?", code).
				UpdateColumn("current_stock", gorm.Expr("current_stock + ?", n)).Error; err != nil {
				return fmt.Errorf("update stock %s: %w", code, err)
			}
		}

		shipments := []models.Transportation{
			{
				ShipmentID:         "SHP-0001",
				FromLocation:       "YGN_MAIN",
				ToLocation:         "MDY_REGIONAL",
				ScheduledDeparture: today.Add(24*time.Hour + 8*time.Hour),
				Status:             models.ShipmentStatusScheduled,
				DriverName:         "U Kyaw Min",
				DriverContact:      "+95-9-111222",
				SecurityStatus:     "Secure",
			},
			{
				ShipmentID:         "SHP-0002",
				FromLocation:       "MDY_REGIONAL",
				ToLocation:         "YGN_MAIN",
				ScheduledDeparture: today.Add(-6 * time.Hour),
				Status:             models.ShipmentStatusInTransit,
				DriverName:         "Daw Hnin Wai",
				DriverContact:      "+95-9-333444",
				SecurityStatus:     "Secure",
			},
		}
		if err := tx.Create(&shipments).Error; err != nil {
			return fmt.Errorf("create shipments: %w", err)
		}

		slog.Info("sample data loaded", "locations", len(locations), "units", len(units), "shipments", len(shipments))
		return nil
	})
}
