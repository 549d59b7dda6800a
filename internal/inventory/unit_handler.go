package inventory

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"bloodbank-backend/internal/auth"
	"bloodbank-backend/internal/database"
	"bloodbank-backend/internal/i18n"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/shelflife"

	"github.com/gofiber/fiber/v2"
)

var nowFunc = time.Now

type UnitResponse struct {
	BloodID         string `json:"blood_id"`
	BloodType       string `json:"blood_type"`
	ProductType     string `json:"product_type"`
	DonationDate    string `json:"donation_date"`
	ExpiryDate      string `json:"expiry_date"`
	CurrentLocation string `json:"current_location"`
	TemperatureZone string `json:"temperature_zone"`
	Status          string `json:"status"`
	DaysRemaining   int    `json:"days_remaining"`
	ExpiryStatus    string `json:"expiry_status"`
	ExpiryLabel     string `json:"expiry_label"` // istek diline çevrilmiş
}

type ExpiredUnitResponse struct {
	UnitResponse
	DaysExpired int `json:"days_expired"`
}

func ToUnitResponse(ctx context.Context, u models.BloodUnit, today time.Time) UnitResponse {
	expiry := time.Time(u.ExpiryDate)
	days := shelflife.DaysBetween(today, expiry)
	status := shelflife.Classify(days)

	return UnitResponse{
		BloodID:         u.BloodID,
		BloodType:       u.BloodType,
		ProductType:     u.ProductType,
		DonationDate:    time.Time(u.DonationDate).Format(shelflife.DateLayout),
		ExpiryDate:      expiry.Format(shelflife.DateLayout),
		CurrentLocation: u.CurrentLocation,
		TemperatureZone: u.TemperatureZone,
		Status:          string(u.Status),
		DaysRemaining:   days,
		ExpiryStatus:    string(status),
		ExpiryLabel:     i18n.T(ctx, string(status)),
	}
}

func toUnitResponses(ctx context.Context, units []models.BloodUnit, today time.Time) []UnitResponse {
	resp := make([]UnitResponse, 0, len(units))
	for _, u := range units {
		resp = append(resp, ToUnitResponse(ctx, u, today))
	}
	return resp
}

func actorFrom(c *fiber.Ctx) Actor {
	userID, name := auth.Actor(c)
	return Actor{UserID: userID, UserName: name}
}

// url-encoded ünite id'lerini çöz ("Whole Blood" boşluk içerir)
func unitIDParam(c *fiber.Ctx) string {
	id := c.Params("id")
	if decoded, err := url.PathUnescape(id); err == nil {
		return decoded
	}
	return id
}

func failure(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

// POST /api/units
func RegisterUnitHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterInput
		if err := c.BodyParser(&body); err != nil {
			return failure(c, fiber.StatusBadRequest, "invalid request body")
		}

		unit, alert, err := Register(c.UserContext(), database.DB, body, actorFrom(c), nowFunc())
		if err != nil {
			if errors.Is(err, ErrValidation) {
				return failure(c, fiber.StatusBadRequest, err.Error())
			}
			slog.Error("blood unit registration failed", "err", err, "location", body.CurrentLocation)
			return failure(c, fiber.StatusInternalServerError, "blood unit could not be registered")
		}

		slog.Info("blood unit registered", "blood_id", unit.BloodID, "location", unit.CurrentLocation, "alert", alert != nil)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":  true,
			"blood_id": unit.BloodID,
		})
	}
}

// POST /api/units/:id/dispose
func DisposeUnitHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := unitIDParam(c)

		unit, err := Dispose(c.UserContext(), database.DB, id, actorFrom(c))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return failure(c, fiber.StatusNotFound, "not found")
			}
			slog.Error("blood unit disposal failed", "err", err, "blood_id", id)
			return failure(c, fiber.StatusInternalServerError, "blood unit could not be disposed")
		}

		slog.Info("blood unit disposed", "blood_id", unit.BloodID, "location", unit.CurrentLocation)

		return c.JSON(fiber.Map{"success": true})
	}
}

// GET /api/units?blood_type=A%2B&location=YGN_MAIN
func ListUnitsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		units, err := List(c.UserContext(), database.DB, UnitFilter{
			BloodType:     c.Query("blood_type"),
			Location:      c.Query("location"),
			OrderByExpiry: true,
		})
		if err != nil {
			slog.Error("list units failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Blood units could not be listed")
		}

		return c.JSON(toUnitResponses(c.UserContext(), units, nowFunc()))
	}
}

// GET /api/units/:id
func GetUnitHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		unit, err := Get(c.UserContext(), database.DB, unitIDParam(c))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Blood unit not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Blood unit could not be loaded")
		}
		return c.JSON(ToUnitResponse(c.UserContext(), *unit, nowFunc()))
	}
}

// GET /api/units/expired
func ListExpiredUnitsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		today := nowFunc()
		units, err := ListExpired(c.UserContext(), database.DB, today)
		if err != nil {
			slog.Error("list expired units failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Expired units could not be listed")
		}

		resp := make([]ExpiredUnitResponse, 0, len(units))
		for _, u := range units {
			base := ToUnitResponse(c.UserContext(), u, today)
			resp = append(resp, ExpiredUnitResponse{
				UnitResponse: base,
				DaysExpired:  -base.DaysRemaining,
			})
		}
		return c.JSON(fiber.Map{
			"expired_count": len(resp),
			"units":         resp,
		})
	}
}

// GET /api/units/expiring?days=7
func ListExpiringUnitsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", shelflife.ExpiringSoonDays)
		if days < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "days must not be negative")
		}

		today := nowFunc()
		units, err := ListExpiringWithin(c.UserContext(), database.DB, today, days)
		if err != nil {
			slog.Error("list expiring units failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Expiring units could not be listed")
		}

		return c.JSON(fiber.Map{
			"days":  days,
			"units": toUnitResponses(c.UserContext(), units, today),
		})
	}
}

// GET /api/expired-count
func ExpiredCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := CountExpired(c.UserContext(), database.DB, nowFunc())
		if err != nil {
			slog.Error("count expired units failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Expired units could not be counted")
		}
		return c.JSON(fiber.Map{"expired_count": n})
	}
}
