package audit

import (
	"encoding/json"
	"fmt"

	"bloodbank-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const AnonymousUser = "anonymous"

type LogOptions struct {
	LocationCode string
	UserID       uint
	UserName     string
	EntityType   string
	EntityID     string
	Action       models.AuditAction
	Description  string
	Before       any
	After        any
}

// WriteLog: verilen tx/db üzerinden audit kaydı yazar. Çağıranın transaction'ı
// geçilirse log da aynı commit/rollback'e dahil olur.
func WriteLog(db *gorm.DB, opts LogOptions) error {
	userName := opts.UserName
	if userName == "" {
		userName = AnonymousUser
	}

	entry := models.AuditLog{
		LocationCode: opts.LocationCode,
		UserID:       opts.UserID,
		UserName:     userName,
		EntityType:   opts.EntityType,
		EntityID:     opts.EntityID,
		Action:       opts.Action,
		Description:  opts.Description,
		BeforeData:   toJSON(opts.Before),
		AfterData:    toJSON(opts.After),
	}

	if err := db.Create(&entry).Error; err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// jsonb kolonuna boş string yazılamaz, nil için "null" kullanılır
func toJSON(v any) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("null")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}
