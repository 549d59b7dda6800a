package main

import (
	"errors"
	"log/slog"
	"strings"

	"bloodbank-backend/internal/alerts"
	"bloodbank-backend/internal/audit"
	"bloodbank-backend/internal/auth"
	"bloodbank-backend/internal/config"
	"bloodbank-backend/internal/dashboard"
	"bloodbank-backend/internal/i18n"
	"bloodbank-backend/internal/inventory"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/report"
	"bloodbank-backend/internal/transport"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func errorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
		})
	}
	slog.Error("unexpected error", "err", err, "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Unexpected server error",
	})
}

func newApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))

	// CORS origins'i virgülle ayrılmış string'den al
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	origins := strings.Join(corsOrigins, ",")
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
		// dil cookie'si için; "*" ile birlikte kullanılamaz
		AllowCredentials: origins != "*",
	}))

	registerRoutes(app, cfg)
	return app
}

func registerRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api", i18n.Middleware(), auth.OptionalJWT(cfg.JWTSecret))

	requireAuth := auth.JWTMiddleware(cfg.JWTSecret)
	adminOnly := auth.RequireRole(models.RoleAdmin)

	// Dil
	api.Post("/language", i18n.SetLanguageHandler())
	api.Get("/i18n", i18n.TranslationsHandler())

	// Auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler())
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Get("/auth/me", requireAuth, auth.MeHandler())
	api.Post("/admin/users", requireAuth, adminOnly, auth.CreateStaffHandler())

	// Üniteler (statik yollar :id'den önce)
	api.Get("/expired-count", inventory.ExpiredCountHandler())
	api.Post("/units", inventory.RegisterUnitHandler())
	api.Get("/units", inventory.ListUnitsHandler())
	api.Get("/units/expired", inventory.ListExpiredUnitsHandler())
	api.Get("/units/expiring", inventory.ListExpiringUnitsHandler())
	api.Get("/units/:id", inventory.GetUnitHandler())
	api.Post("/units/:id/dispose", inventory.DisposeUnitHandler())

	// Lokasyonlar
	api.Get("/locations", inventory.ListLocationsHandler())
	api.Get("/locations/:code", inventory.GetLocationHandler())
	api.Post("/locations", requireAuth, adminOnly, inventory.CreateLocationHandler())

	// Sevkiyatlar
	api.Get("/shipments", transport.ListShipmentsHandler())
	api.Post("/shipments", requireAuth, transport.CreateShipmentHandler())

	// Alarmlar
	api.Get("/alerts", alerts.ListAlertsHandler())
	api.Post("/alerts/:id/acknowledge", requireAuth, alerts.AcknowledgeHandler())

	// Dashboard & raporlar
	api.Get("/dashboard", dashboard.Handler())
	api.Get("/reports", report.Handler())
	api.Get("/reports/export", report.ExportHandler())

	// Audit logs
	api.Get("/audit-logs", requireAuth, adminOnly, audit.ListAuditLogsHandler())
}
