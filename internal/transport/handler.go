package transport

import (
	"errors"
	"log/slog"
	"time"

	"bloodbank-backend/internal/auth"
	"bloodbank-backend/internal/database"
	"bloodbank-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ShipmentResponse struct {
	ShipmentID         string `json:"shipment_id"`
	FromLocation       string `json:"from_location"`
	ToLocation         string `json:"to_location"`
	ScheduledDeparture string `json:"scheduled_departure"`
	Status             string `json:"status"`
	DriverName         string `json:"driver_name"`
	DriverContact      string `json:"driver_contact"`
	SecurityStatus     string `json:"security_status"`
}

func toShipmentResponse(s models.Transportation) ShipmentResponse {
	return ShipmentResponse{
		ShipmentID:         s.ShipmentID,
		FromLocation:       s.FromLocation,
		ToLocation:         s.ToLocation,
		ScheduledDeparture: s.ScheduledDeparture.UTC().Format(time.RFC3339),
		Status:             string(s.Status),
		DriverName:         s.DriverName,
		DriverContact:      s.DriverContact,
		SecurityStatus:     s.SecurityStatus,
	}
}

// GET /api/shipments?status=In%20Transit
func ListShipmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		shipments, err := List(c.UserContext(), database.DB, Filter{
			Status: models.ShipmentStatus(c.Query("status")),
		})
		if err != nil {
			slog.Error("list shipments failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Shipments could not be listed")
		}

		resp := make([]ShipmentResponse, 0, len(shipments))
		for _, s := range shipments {
			resp = append(resp, toShipmentResponse(s))
		}
		return c.JSON(resp)
	}
}

// POST /api/shipments
func CreateShipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ScheduleInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		userID, userName := auth.Actor(c)
		shipment, err := Schedule(c.UserContext(), database.DB, body, userID, userName)
		if err != nil {
			if errors.Is(err, ErrValidation) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			slog.Error("schedule shipment failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Shipment could not be scheduled")
		}

		slog.Info("shipment scheduled", "shipment_id", shipment.ShipmentID, "from", shipment.FromLocation, "to", shipment.ToLocation)
		return c.Status(fiber.StatusCreated).JSON(toShipmentResponse(*shipment))
	}
}
