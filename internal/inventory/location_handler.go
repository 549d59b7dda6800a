package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bloodbank-backend/internal/audit"
	"bloodbank-backend/internal/database"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/stats"
	"bloodbank-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateLocationRequest struct {
	LocationCode          string `json:"location_code" validate:"required,max=32"`
	LocationName          string `json:"location_name" validate:"required"`
	LocationType          string `json:"location_type" validate:"required"`
	Capacity              int    `json:"capacity" validate:"min=0"`
	TemperatureCapability string `json:"temperature_capability" validate:"required"`
	ContactPerson         string `json:"contact_person"`
	PhoneNumber           string `json:"phone_number" validate:"max=20"`
}

type LocationResponse struct {
	LocationCode          string `json:"location_code"`
	LocationName          string `json:"location_name"`
	LocationType          string `json:"location_type"`
	Capacity              int    `json:"capacity"`
	CurrentStock          int    `json:"current_stock"`
	TemperatureCapability string `json:"temperature_capability"`
	ContactPerson         string `json:"contact_person"`
	PhoneNumber           string `json:"phone_number"`
	UsagePercentage       int    `json:"usage_percentage"`
	NearCapacity          bool   `json:"near_capacity"` // %80 üzeri
}

const nearCapacityPercent = 80

func ToLocationResponse(l models.Location) LocationResponse {
	usage := stats.UsagePercent(l.CurrentStock, l.Capacity)
	return LocationResponse{
		LocationCode:          l.LocationCode,
		LocationName:          l.LocationName,
		LocationType:          l.LocationType,
		Capacity:              l.Capacity,
		CurrentStock:          l.CurrentStock,
		TemperatureCapability: l.TemperatureCapability,
		ContactPerson:         l.ContactPerson,
		PhoneNumber:           l.PhoneNumber,
		UsagePercentage:       usage,
		NearCapacity:          usage > nearCapacityPercent,
	}
}

func ListLocations(ctx context.Context, db *gorm.DB) ([]models.Location, error) {
	locations := []models.Location{}
	if err := db.WithContext(ctx).Order("location_code ASC").Find(&locations).Error; err != nil {
		return nil, storeErr("list locations", err)
	}
	return locations, nil
}

// GET /api/locations
func ListLocationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		locations, err := ListLocations(c.UserContext(), database.DB)
		if err != nil {
			slog.Error("list locations failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Locations could not be listed")
		}

		resp := make([]LocationResponse, 0, len(locations))
		for _, l := range locations {
			resp = append(resp, ToLocationResponse(l))
		}
		return c.JSON(resp)
	}
}

// GET /api/locations/:code
func GetLocationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var loc models.Location
		if err := database.DB.WithContext(c.UserContext()).First(&loc, "location_code = ?", c.Params("code")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Location not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Location could not be loaded")
		}
		return c.JSON(ToLocationResponse(loc))
	}
}

// POST /api/locations
// Stok 0 ile başlar, sadece ünite kayıt/imha ile değişir.
// Aynı kod için çakışma primary key ile yakalanır (409).
func CreateLocationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLocationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := models.Location{
			LocationCode:          body.LocationCode,
			LocationName:          body.LocationName,
			LocationType:          body.LocationType,
			Capacity:              body.Capacity,
			CurrentStock:          0,
			TemperatureCapability: body.TemperatureCapability,
			ContactPerson:         body.ContactPerson,
			PhoneNumber:           body.PhoneNumber,
		}

		actor := actorFrom(c)
		err := database.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&loc).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				LocationCode: loc.LocationCode,
				UserID:       actor.UserID,
				UserName:     actor.UserName,
				EntityType:   "location",
				EntityID:     loc.LocationCode,
				Action:       models.AuditActionCreate,
				Description:  fmt.Sprintf("Location created: %s (capacity %d)", loc.LocationName, loc.Capacity),
				After:        loc,
			})
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("Location %s already exists", body.LocationCode))
		}
		if err != nil {
			slog.Error("create location failed", "err", err, "code", body.LocationCode)
			return fiber.NewError(fiber.StatusInternalServerError, "Location could not be created")
		}

		return c.Status(fiber.StatusCreated).JSON(ToLocationResponse(loc))
	}
}
