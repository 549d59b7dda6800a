package models

// Location: Kan bankası / depolama noktası
type Location struct {
	LocationCode          string `gorm:"primaryKey;size:32"`
	LocationName          string `gorm:"size:100;not null"`
	LocationType          string `gorm:"size:50;not null"`
	Capacity              int    `gorm:"not null"`
	CurrentStock          int    `gorm:"not null;default:0"` // ünite kayıt/imha ile artar/azalır
	TemperatureCapability string `gorm:"size:50;not null"`
	ContactPerson         string `gorm:"size:100"`
	PhoneNumber           string `gorm:"size:20"`
}
