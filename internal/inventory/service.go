package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bloodbank-backend/internal/audit"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/shelflife"
	"bloodbank-backend/internal/validation"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const entityBloodUnit = "blood_unit"

type RegisterInput struct {
	BloodType       string `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	ProductType     string `json:"product_type" validate:"required,max=20"`
	DonationDate    string `json:"donation_date" validate:"required,datetime=2006-01-02"` // "2026-10-19"
	CurrentLocation string `json:"current_location" validate:"required"`
}

// Actor: işlemi yapan kullanıcı (public endpoint'lerde boş)
type Actor struct {
	UserID   uint
	UserName string
}

type UnitFilter struct {
	BloodType     string
	Location      string
	OrderByExpiry bool
}

func newBloodID(bloodType, productType string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s_%s", bloodType, productType, now.Format("20060102_150405"), uuid.NewString()[:4])
}

// Register: üniteyi kaydeder, lokasyon stoğunu 1 artırır ve gerekirse
// son kullanma alarmı yazar. Hepsi tek transaction içinde.
func Register(ctx context.Context, db *gorm.DB, in RegisterInput, actor Actor, now time.Time) (*models.BloodUnit, *models.ExpiryAlert, error) {
	if err := validation.Struct(in); err != nil {
		return nil, nil, validationErr("%s", err.Error())
	}

	donation, err := shelflife.ParseDate(in.DonationDate)
	if err != nil {
		return nil, nil, validationErr("donation_date must be in YYYY-MM-DD format")
	}

	expiry := shelflife.ExpiryDate(in.ProductType, donation)
	unit := models.BloodUnit{
		BloodID:         newBloodID(in.BloodType, in.ProductType, now),
		BloodType:       in.BloodType,
		ProductType:     in.ProductType,
		DonationDate:    datatypes.Date(donation),
		ExpiryDate:      datatypes.Date(expiry),
		CurrentLocation: in.CurrentLocation,
		TemperatureZone: shelflife.TemperatureZone(in.ProductType),
		Status:          models.UnitStatusAvailable,
	}

	var alert *models.ExpiryAlert
	daysRemaining := shelflife.DaysBetween(now, expiry)

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// atomik artış; satır yoksa lokasyon bilinmiyor demektir
		res := tx.Model(&models.Location{}).
			Where("location_code = ?", in.CurrentLocation).
			UpdateColumn("current_stock", gorm.Expr("current_stock + ?", 1))
		if res.Error != nil {
			return storeErr("increment stock", res.Error)
		}
		if res.RowsAffected == 0 {
			return validationErr("location %q not found", in.CurrentLocation)
		}

		if err := tx.Create(&unit).Error; err != nil {
			return storeErr("insert unit", err)
		}

		if daysRemaining <= shelflife.ExpiringSoonDays {
			alert = &models.ExpiryAlert{
				BloodID:       unit.BloodID,
				AlertType:     models.AlertTypeExpiring,
				AlertDate:     now,
				DaysRemaining: daysRemaining,
				ActionTaken:   models.AlertActionPending,
			}
			if err := tx.Create(alert).Error; err != nil {
				return storeErr("insert alert", err)
			}
		}

		if err := audit.WriteLog(tx, audit.LogOptions{
			LocationCode: unit.CurrentLocation,
			UserID:       actor.UserID,
			UserName:     actor.UserName,
			EntityType:   entityBloodUnit,
			EntityID:     unit.BloodID,
			Action:       models.AuditActionCreate,
			Description:  fmt.Sprintf("Registered %s %s at %s, expires %s", unit.BloodType, unit.ProductType, unit.CurrentLocation, expiry.Format(shelflife.DateLayout)),
			After:        unit,
		}); err != nil {
			return storeErr("audit", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &unit, alert, nil
}

// Dispose: üniteyi kalıcı olarak siler ve lokasyon stoğunu 1 azaltır (0'ın altına inmez).
// Aynı ünite için eşzamanlı iki çağrıdan yalnızca biri başarılı olur.
func Dispose(ctx context.Context, db *gorm.DB, bloodID string, actor Actor) (*models.BloodUnit, error) {
	var unit models.BloodUnit

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&unit, "blood_id = ?", bloodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: blood unit %q", ErrNotFound, bloodID)
			}
			return storeErr("load unit", err)
		}

		res := tx.Where("blood_id = ?", bloodID).Delete(&models.BloodUnit{})
		if res.Error != nil {
			return storeErr("delete unit", res.Error)
		}
		if res.RowsAffected == 0 {
			// başka bir istek aynı üniteyi bizden önce sildi
			return fmt.Errorf("%w: blood unit %q", ErrNotFound, bloodID)
		}

		if err := tx.Model(&models.Location{}).
			Where("location_code = ? AND current_stock > 0", unit.CurrentLocation).
			UpdateColumn("current_stock", gorm.Expr("current_stock - ?", 1)).Error; err != nil {
			return storeErr("decrement stock", err)
		}

		if err := audit.WriteLog(tx, audit.LogOptions{
			LocationCode: unit.CurrentLocation,
			UserID:       actor.UserID,
			UserName:     actor.UserName,
			EntityType:   entityBloodUnit,
			EntityID:     unit.BloodID,
			Action:       models.AuditActionDelete,
			Description:  fmt.Sprintf("Disposed %s %s from %s", unit.BloodType, unit.ProductType, unit.CurrentLocation),
			Before:       unit,
		}); err != nil {
			return storeErr("audit", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func Get(ctx context.Context, db *gorm.DB, bloodID string) (*models.BloodUnit, error) {
	var unit models.BloodUnit
	if err := db.WithContext(ctx).First(&unit, "blood_id = ?", bloodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: blood unit %q", ErrNotFound, bloodID)
		}
		return nil, storeErr("load unit", err)
	}
	return &unit, nil
}

// List: boş filtre alanı kısıt uygulamaz
func List(ctx context.Context, db *gorm.DB, f UnitFilter) ([]models.BloodUnit, error) {
	q := db.WithContext(ctx).Model(&models.BloodUnit{})
	if f.BloodType != "" {
		q = q.Where("blood_type = ?", f.BloodType)
	}
	if f.Location != "" {
		q = q.Where("current_location = ?", f.Location)
	}
	if f.OrderByExpiry {
		q = q.Order("expiry_date ASC, blood_id ASC")
	}

	units := []models.BloodUnit{}
	if err := q.Find(&units).Error; err != nil {
		return nil, storeErr("list units", err)
	}
	return units, nil
}

func expiredScope(asOf time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("expiry_date < ?", datatypes.Date(shelflife.Day(asOf)))
	}
}

// as-of <= expiry <= as-of + horizon; süresi geçmiş üniteler dahil değildir
func expiringScope(asOf time.Time, horizonDays int) func(*gorm.DB) *gorm.DB {
	if horizonDays < 0 {
		horizonDays = 0
	}
	from := shelflife.Day(asOf)
	to := from.AddDate(0, 0, horizonDays)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("expiry_date >= ? AND expiry_date <= ?", datatypes.Date(from), datatypes.Date(to))
	}
}

// ListExpired: expiry < asOf
func ListExpired(ctx context.Context, db *gorm.DB, asOf time.Time) ([]models.BloodUnit, error) {
	units := []models.BloodUnit{}
	if err := db.WithContext(ctx).
		Scopes(expiredScope(asOf)).
		Order("expiry_date ASC, blood_id ASC").
		Find(&units).Error; err != nil {
		return nil, storeErr("list expired units", err)
	}
	return units, nil
}

func ListExpiringWithin(ctx context.Context, db *gorm.DB, asOf time.Time, horizonDays int) ([]models.BloodUnit, error) {
	units := []models.BloodUnit{}
	if err := db.WithContext(ctx).
		Scopes(expiringScope(asOf, horizonDays)).
		Order("expiry_date ASC, blood_id ASC").
		Find(&units).Error; err != nil {
		return nil, storeErr("list expiring units", err)
	}
	return units, nil
}

func CountExpired(ctx context.Context, db *gorm.DB, asOf time.Time) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&models.BloodUnit{}).Scopes(expiredScope(asOf)).Count(&n).Error; err != nil {
		return 0, storeErr("count expired units", err)
	}
	return n, nil
}

func CountExpiringWithin(ctx context.Context, db *gorm.DB, asOf time.Time, horizonDays int) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&models.BloodUnit{}).Scopes(expiringScope(asOf, horizonDays)).Count(&n).Error; err != nil {
		return 0, storeErr("count expiring units", err)
	}
	return n, nil
}

func CountUnits(ctx context.Context, db *gorm.DB, status models.UnitStatus) (int64, error) {
	q := db.WithContext(ctx).Model(&models.BloodUnit{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, storeErr("count units", err)
	}
	return n, nil
}
