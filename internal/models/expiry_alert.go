package models

import "time"

const (
	AlertTypeExpiring  = "Expiring"
	AlertActionPending = "Pending"
)

// ExpiryAlert: Kayıt anında 7 gün veya daha az ömrü kalan ünite için bir kez yazılır
type ExpiryAlert struct {
	ID            uint      `gorm:"primaryKey"`
	BloodID       string    `gorm:"size:64;not null;index"`
	AlertType     string    `gorm:"size:50;not null"`
	AlertDate     time.Time `gorm:"not null;index"`
	DaysRemaining int
	ActionTaken   string `gorm:"size:50;not null;default:Pending"`
}
