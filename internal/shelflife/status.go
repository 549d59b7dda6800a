package shelflife

type ExpiryStatus string

const (
	StatusExpired  ExpiryStatus = "Expired"
	StatusCritical ExpiryStatus = "Critical"
	StatusWarning  ExpiryStatus = "Warning"
	StatusGood     ExpiryStatus = "Good"
)

// ExpiringSoonDays: kayıt anında alarm üretilen ve dashboard'da "yakında" sayılan eşik
const ExpiringSoonDays = 7

const criticalDays = 3

// Classify: envanter listesinde gösterilen kalan gün rozetleri
func Classify(daysRemaining int) ExpiryStatus {
	switch {
	case daysRemaining < 0:
		return StatusExpired
	case daysRemaining <= criticalDays:
		return StatusCritical
	case daysRemaining <= ExpiringSoonDays:
		return StatusWarning
	default:
		return StatusGood
	}
}
