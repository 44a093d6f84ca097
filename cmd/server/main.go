package main

import (
	"log"
	"strings"

	"supplychain-backend/internal/config"
	"supplychain-backend/internal/dashboard"
	"supplychain-backend/internal/models"
	"supplychain-backend/internal/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	// The snapshot is built once at startup and handed to every handler;
	// nothing downstream mutates it.
	var snap *models.Snapshot
	if cfg.SnapshotPath != "" {
		loaded, err := snapshot.Load(cfg.SnapshotPath)
		if err != nil {
			log.Fatal("[FATAL] Snapshot file rejected: ", err)
		}
		snap = loaded
		log.Println("Snapshot loaded from", cfg.SnapshotPath)
	} else {
		snap = snapshot.Default()
		// The compiled-in figures are updated by hand, so check them too.
		if err := snapshot.Validate(snap); err != nil {
			log.Fatal("[FATAL] Compiled-in snapshot rejected: ", err)
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	api := app.Group("/api")

	// Dashboard payloads
	api.Get("/dashboard", dashboard.OverviewHandler(snap))
	api.Get("/dashboard/issues", dashboard.IssuesHandler(snap))
	api.Get("/dashboard/kpis", dashboard.KPIsHandler(snap))

	// Raw snapshot for tabular display
	api.Get("/snapshot", dashboard.SnapshotHandler(snap))

	// Report downloads
	api.Get("/reports/summary", dashboard.SummaryReportHandler(snap))
	api.Get("/reports/workbook", dashboard.WorkbookReportHandler(snap))

	// Offline-edited report files can be checked before recirculation
	api.Post("/reports/workbook/validate", dashboard.ValidateWorkbookHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
