package models

import (
	"time"

	"gorm.io/datatypes"
)

type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "Available"
)

// BloodUnit: Tek bir kan ürünü (bağış tarihi + son kullanma tarihi)
type BloodUnit struct {
	BloodID         string         `gorm:"primaryKey;size:64"`
	BloodType       string         `gorm:"size:5;not null;index"`
	ProductType     string         `gorm:"size:20;not null"`
	DonationDate    datatypes.Date `gorm:"not null"`
	ExpiryDate      datatypes.Date `gorm:"not null;index"` // ürün tipinden hesaplanır, elle değiştirilmez
	CurrentLocation string         `gorm:"size:32;not null;index"`
	TemperatureZone string         `gorm:"size:40;not null"`
	Status          UnitStatus     `gorm:"size:20;not null;default:Available"`
	CreatedAt       time.Time
}
