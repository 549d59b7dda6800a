// Package dashboard aggregates the headline numbers shown on the home screen.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"bloodbank-backend/internal/alerts"
	"bloodbank-backend/internal/database"
	"bloodbank-backend/internal/inventory"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/shelflife"
	"bloodbank-backend/internal/transport"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const recentAlertCount = 5

var nowFunc = time.Now

type Stats struct {
	TotalUnits      int64                        `json:"total_units"` // status = Available
	ExpiringSoon    int64                        `json:"expiring_soon"`
	ExpiredUnits    int64                        `json:"expired_units"`
	ActiveShipments int64                        `json:"active_shipments"`
	TotalLocations  int64                        `json:"total_locations"`
	RecentAlerts    []alerts.AlertResponse       `json:"recent_alerts"`
	Locations       []inventory.LocationResponse `json:"locations"`
}

func Compute(ctx context.Context, db *gorm.DB, today time.Time) (*Stats, error) {
	var (
		s   Stats
		err error
	)

	if s.TotalUnits, err = inventory.CountUnits(ctx, db, models.UnitStatusAvailable); err != nil {
		return nil, err
	}
	if s.ExpiringSoon, err = inventory.CountExpiringWithin(ctx, db, today, shelflife.ExpiringSoonDays); err != nil {
		return nil, err
	}
	if s.ExpiredUnits, err = inventory.CountExpired(ctx, db, today); err != nil {
		return nil, err
	}
	if s.ActiveShipments, err = transport.CountActive(ctx, db); err != nil {
		return nil, err
	}

	locations, err := inventory.ListLocations(ctx, db)
	if err != nil {
		return nil, err
	}
	s.TotalLocations = int64(len(locations))
	s.Locations = make([]inventory.LocationResponse, 0, len(locations))
	for _, l := range locations {
		s.Locations = append(s.Locations, inventory.ToLocationResponse(l))
	}

	recent, err := alerts.RecentPending(ctx, db, recentAlertCount)
	if err != nil {
		return nil, err
	}
	s.RecentAlerts = make([]alerts.AlertResponse, 0, len(recent))
	for _, a := range recent {
		s.RecentAlerts = append(s.RecentAlerts, alerts.ToAlertResponse(a))
	}

	return &s, nil
}

// GET /api/dashboard
func Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := Compute(c.UserContext(), database.DB, nowFunc())
		if err != nil {
			slog.Error("dashboard stats failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Dashboard could not be loaded")
		}
		return c.JSON(stats)
	}
}
