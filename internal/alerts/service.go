// Package alerts reads and acknowledges the expiry alert log.
package alerts

import (
	"context"
	"errors"
	"fmt"

	"bloodbank-backend/internal/audit"
	"bloodbank-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("alert not found")
	ErrStore    = errors.New("store failure")
)

// Alert listesi en yeniden eskiye sıralanır
func List(ctx context.Context, db *gorm.DB, pendingOnly bool, limit int) ([]models.ExpiryAlert, error) {
	q := db.WithContext(ctx).Model(&models.ExpiryAlert{})
	if pendingOnly {
		q = q.Where("action_taken = ?", models.AlertActionPending)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	alerts := []models.ExpiryAlert{}
	if err := q.Order("alert_date DESC, id DESC").Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("%w: list alerts: %w", ErrStore, err)
	}
	return alerts, nil
}

// RecentPending: dashboard için son n bekleyen alarm
func RecentPending(ctx context.Context, db *gorm.DB, n int) ([]models.ExpiryAlert, error) {
	return List(ctx, db, true, n)
}

// Acknowledge: action_taken alanını günceller (ör: "Disposed", "Transferred")
func Acknowledge(ctx context.Context, db *gorm.DB, id uint, action string, userID uint, userName string) (*models.ExpiryAlert, error) {
	var alert models.ExpiryAlert

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&alert, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %d", ErrNotFound, id)
			}
			return fmt.Errorf("%w: load alert: %w", ErrStore, err)
		}
		before := alert

		if err := tx.Model(&alert).Update("action_taken", action).Error; err != nil {
			return fmt.Errorf("%w: update alert: %w", ErrStore, err)
		}
		alert.ActionTaken = action

		return audit.WriteLog(tx, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "expiry_alert",
			EntityID:    fmt.Sprintf("%d", alert.ID),
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Alert for %s marked %s", alert.BloodID, action),
			Before:      before,
			After:       alert,
		})
	})
	if err != nil {
		return nil, err
	}
	return &alert, nil
}
