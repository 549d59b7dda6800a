// Package report builds the inventory report and its spreadsheet export.
package report

import (
	"context"
	"fmt"
	"time"

	"bloodbank-backend/internal/inventory"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/shelflife"
	"bloodbank-backend/internal/stats"

	"gorm.io/gorm"
)

const expiringHorizonDays = 3

type BloodTypeShare struct {
	BloodType  string  `json:"blood_type"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type LocationSummary struct {
	LocationCode    string `json:"location_code"`
	LocationName    string `json:"location_name"`
	CurrentStock    int    `json:"current_stock"`
	Capacity        int    `json:"capacity"`
	UsagePercentage int    `json:"usage_percentage"`
	CountedUnits    int64  `json:"counted_units"` // blood_units tablosundan sayılan
	StockDrift      int64  `json:"stock_drift"`   // current_stock - counted_units
}

type Report struct {
	GeneratedAt  string            `json:"generated_at"`
	TotalUnits   int64             `json:"total_units"`
	ExpiringSoon int64             `json:"expiring_soon"`
	ExpiredUnits int64             `json:"expired_units"`
	WastageRate  float64           `json:"wastage_rate"`
	BloodTypes   []BloodTypeShare  `json:"blood_type_distribution"`
	Locations    []LocationSummary `json:"locations"`
}

type groupCount struct {
	Grp string
	N   int64
}

func countBy(ctx context.Context, db *gorm.DB, column string) (map[string]int64, error) {
	var rows []groupCount
	if err := db.WithContext(ctx).Model(&models.BloodUnit{}).
		Select(column + " AS grp, COUNT(*) AS n").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count units by %s: %w", column, err)
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Grp] = r.N
	}
	return out, nil
}

// Compute: rapor sayıları; boş veritabanında tüm oranlar 0
func Compute(ctx context.Context, db *gorm.DB, today time.Time) (*Report, error) {
	r := Report{GeneratedAt: today.Format(shelflife.DateLayout)}

	var err error
	if r.TotalUnits, err = inventory.CountUnits(ctx, db, ""); err != nil {
		return nil, err
	}
	if r.ExpiringSoon, err = inventory.CountExpiringWithin(ctx, db, today, expiringHorizonDays); err != nil {
		return nil, err
	}
	if r.ExpiredUnits, err = inventory.CountExpired(ctx, db, today); err != nil {
		return nil, err
	}
	r.WastageRate = stats.Percent(r.ExpiredUnits, r.TotalUnits, 2)

	byType, err := countBy(ctx, db, "blood_type")
	if err != nil {
		return nil, err
	}
	r.BloodTypes = make([]BloodTypeShare, 0, len(shelflife.BloodTypes))
	for _, bt := range shelflife.BloodTypes {
		n := byType[bt]
		r.BloodTypes = append(r.BloodTypes, BloodTypeShare{
			BloodType:  bt,
			Count:      n,
			Percentage: stats.Percent(n, r.TotalUnits, 2),
		})
	}

	byLocation, err := countBy(ctx, db, "current_location")
	if err != nil {
		return nil, err
	}
	locations, err := inventory.ListLocations(ctx, db)
	if err != nil {
		return nil, err
	}
	r.Locations = make([]LocationSummary, 0, len(locations))
	for _, l := range locations {
		counted := byLocation[l.LocationCode]
		r.Locations = append(r.Locations, LocationSummary{
			LocationCode:    l.LocationCode,
			LocationName:    l.LocationName,
			CurrentStock:    l.CurrentStock,
			Capacity:        l.Capacity,
			UsagePercentage: stats.UsagePercent(l.CurrentStock, l.Capacity),
			CountedUnits:    counted,
			StockDrift:      int64(l.CurrentStock) - counted,
		})
	}

	return &r, nil
}
