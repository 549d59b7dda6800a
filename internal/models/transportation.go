package models

import "time"

type ShipmentStatus string

const (
	ShipmentStatusScheduled ShipmentStatus = "Scheduled"
	ShipmentStatusInTransit ShipmentStatus = "In Transit"
	ShipmentStatusDelivered ShipmentStatus = "Delivered"
	ShipmentStatusCancelled ShipmentStatus = "Cancelled"
)

// ActiveShipmentStatuses: dashboard'da "aktif" sayılan durumlar
var ActiveShipmentStatuses = []ShipmentStatus{ShipmentStatusScheduled, ShipmentStatusInTransit}

// Transportation: Lokasyonlar arası planlanmış sevkiyat. Durum oluşturulurken set edilir.
type Transportation struct {
	ShipmentID         string         `gorm:"primaryKey;size:20"`
	FromLocation       string         `gorm:"size:32;not null;index"`
	ToLocation         string         `gorm:"size:32;not null;index"`
	ScheduledDeparture time.Time      `gorm:"not null"`
	Status             ShipmentStatus `gorm:"size:20;not null;default:Scheduled;index"`
	DriverName         string         `gorm:"size:100"`
	DriverContact      string         `gorm:"size:20"`
	SecurityStatus     string         `gorm:"size:20;not null;default:Secure"`
	CreatedAt          time.Time
}
