package alerts

import (
	"errors"
	"log/slog"
	"time"

	"bloodbank-backend/internal/auth"
	"bloodbank-backend/internal/database"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AlertResponse struct {
	ID            uint   `json:"id"`
	BloodID       string `json:"blood_id"`
	AlertType     string `json:"alert_type"`
	AlertDate     string `json:"alert_date"`
	DaysRemaining int    `json:"days_remaining"`
	ActionTaken   string `json:"action_taken"`
}

type AcknowledgeRequest struct {
	ActionTaken string `json:"action_taken" validate:"required,max=50"`
}

func ToAlertResponse(a models.ExpiryAlert) AlertResponse {
	return AlertResponse{
		ID:            a.ID,
		BloodID:       a.BloodID,
		AlertType:     a.AlertType,
		AlertDate:     a.AlertDate.UTC().Format(time.RFC3339),
		DaysRemaining: a.DaysRemaining,
		ActionTaken:   a.ActionTaken,
	}
}

// GET /api/alerts?pending=true&limit=50
func ListAlertsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		if limit <= 0 || limit > 1000 {
			limit = 100
		}

		alerts, err := List(c.UserContext(), database.DB, c.QueryBool("pending", false), limit)
		if err != nil {
			slog.Error("list alerts failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Alerts could not be listed")
		}

		resp := make([]AlertResponse, 0, len(alerts))
		for _, a := range alerts {
			resp = append(resp, ToAlertResponse(a))
		}
		return c.JSON(resp)
	}
}

// POST /api/alerts/:id/acknowledge
func AcknowledgeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid alert id")
		}

		var body AcknowledgeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		userID, userName := auth.Actor(c)
		alert, err := Acknowledge(c.UserContext(), database.DB, uint(id), body.ActionTaken, userID, userName)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Alert not found")
			}
			slog.Error("acknowledge alert failed", "err", err, "id", id)
			return fiber.NewError(fiber.StatusInternalServerError, "Alert could not be updated")
		}
		return c.JSON(ToAlertResponse(*alert))
	}
}
