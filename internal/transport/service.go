// Package transport schedules and lists shipments between storage locations.
package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bloodbank-backend/internal/audit"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrStore      = errors.New("store failure")
)

const departureLayout = time.RFC3339

type ScheduleInput struct {
	FromLocation       string `json:"from_location" validate:"required"`
	ToLocation         string `json:"to_location" validate:"required,nefield=FromLocation"`
	ScheduledDeparture string `json:"scheduled_departure" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Status             string `json:"status" validate:"omitempty,oneof=Scheduled 'In Transit'"`
	DriverName         string `json:"driver_name" validate:"max=100"`
	DriverContact      string `json:"driver_contact" validate:"max=20"`
}

type Filter struct {
	Status models.ShipmentStatus
}

func newShipmentID() string {
	return "SHP-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Schedule: sevkiyatı tek seferde oluşturur. Durum burada set edilir, sonradan ilerletilmez.
func Schedule(ctx context.Context, db *gorm.DB, in ScheduleInput, userID uint, userName string) (*models.Transportation, error) {
	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	departure, err := time.Parse(departureLayout, in.ScheduledDeparture)
	if err != nil {
		return nil, fmt.Errorf("%w: scheduled_departure must be RFC3339", ErrValidation)
	}

	status := models.ShipmentStatusScheduled
	if in.Status != "" {
		status = models.ShipmentStatus(in.Status)
	}

	shipment := models.Transportation{
		ShipmentID:         newShipmentID(),
		FromLocation:       in.FromLocation,
		ToLocation:         in.ToLocation,
		ScheduledDeparture: departure.UTC(),
		Status:             status,
		DriverName:         in.DriverName,
		DriverContact:      in.DriverContact,
		SecurityStatus:     "Secure",
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Location{}).
			Where("location_code IN ?", []string{in.FromLocation, in.ToLocation}).
			Count(&n).Error; err != nil {
			return fmt.Errorf("%w: count locations: %w", ErrStore, err)
		}
		if n != 2 {
			return fmt.Errorf("%w: unknown location in %s -> %s", ErrValidation, in.FromLocation, in.ToLocation)
		}

		if err := tx.Create(&shipment).Error; err != nil {
			return fmt.Errorf("%w: insert shipment: %w", ErrStore, err)
		}

		return audit.WriteLog(tx, audit.LogOptions{
			LocationCode: shipment.FromLocation,
			UserID:       userID,
			UserName:     userName,
			EntityType:   "shipment",
			EntityID:     shipment.ShipmentID,
			Action:       models.AuditActionCreate,
			Description:  fmt.Sprintf("Shipment %s scheduled %s -> %s", shipment.ShipmentID, shipment.FromLocation, shipment.ToLocation),
			After:        shipment,
		})
	})
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func List(ctx context.Context, db *gorm.DB, f Filter) ([]models.Transportation, error) {
	q := db.WithContext(ctx).Model(&models.Transportation{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	shipments := []models.Transportation{}
	if err := q.Order("scheduled_departure ASC, shipment_id ASC").Find(&shipments).Error; err != nil {
		return nil, fmt.Errorf("%w: list shipments: %w", ErrStore, err)
	}
	return shipments, nil
}

// CountActive: Scheduled + In Transit
func CountActive(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&models.Transportation{}).
		Where("status IN ?", models.ActiveShipmentStatuses).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count active shipments: %w", ErrStore, err)
	}
	return n, nil
}
