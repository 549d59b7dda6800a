// Package shelflife holds the fixed product tables: shelf life per product
// type and the storage temperature band each product needs.
package shelflife

import "time"

const (
	WholeBlood = "Whole Blood"
	RBC        = "RBC"
	Platelets  = "Platelets"
	Plasma     = "Plasma"
)

const DateLayout = "2006-01-02"

// DefaultShelfLifeDays tanımsız ürün tipleri için kullanılır.
const DefaultShelfLifeDays = 30

const (
	ZoneRefrigerated = "Refrigerated (1-6°C)"
	ZoneRoomTemp     = "Room Temp (20-24°C)"
	ZoneFrozen       = "Frozen (-18°C or below)"
)

// BloodTypes: raporlarda kullanılan sabit ABO/Rh listesi
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var shelfLifeDays = map[string]int{
	WholeBlood: 35,
	RBC:        42,
	Platelets:  5,
	Plasma:     365,
}

var temperatureZones = map[string]string{
	WholeBlood: ZoneRefrigerated,
	RBC:        ZoneRefrigerated,
	Platelets:  ZoneRoomTemp,
	Plasma:     ZoneFrozen,
}

func ShelfLifeDays(productType string) int {
	if d, ok := shelfLifeDays[productType]; ok {
		return d
	}
	return DefaultShelfLifeDays
}

// ExpiryDate: bağış tarihi + ürün tipinin raf ömrü. Hata dönmez.
func ExpiryDate(productType string, donation time.Time) time.Time {
	return Day(donation).AddDate(0, 0, ShelfLifeDays(productType))
}

func TemperatureZone(productType string) string {
	if z, ok := temperatureZones[productType]; ok {
		return z
	}
	return ZoneRefrigerated
}

// Day: t'nin takvim gününü UTC gece yarısı olarak döner
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// DaysBetween: from'dan to'ya kadar geçen tam gün sayısı (to önceyse negatif)
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours() / 24)
}
