package report

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"bloodbank-backend/internal/database"
	"bloodbank-backend/internal/inventory"

	"github.com/gofiber/fiber/v2"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var nowFunc = time.Now

// GET /api/reports
func Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := Compute(c.UserContext(), database.DB, nowFunc())
		if err != nil {
			slog.Error("report failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
		}
		return c.JSON(r)
	}
}

// GET /api/reports/export
func ExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		today := nowFunc()

		r, err := Compute(ctx, database.DB, today)
		if err != nil {
			slog.Error("report failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
		}
		units, err := inventory.List(ctx, database.DB, inventory.UnitFilter{OrderByExpiry: true})
		if err != nil {
			slog.Error("report unit list failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
		}

		var buf bytes.Buffer
		if err := WriteWorkbook(ctx, &buf, r, units, today); err != nil {
			slog.Error("report export failed", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be exported")
		}

		c.Set(fiber.HeaderContentType, xlsxMIME)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="blood-report-%s.xlsx"`, today.Format("20060102")))
		return c.Send(buf.Bytes())
	}
}
