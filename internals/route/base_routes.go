// file: internals/route/base_routes.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime = time.Now()

// BaseRoutes: endpoint kesehatan, tanpa auth.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		sqlDB, err := db.DB()
		if err != nil {
			dbStatus = "error: " + err.Error()
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "error: " + err.Error()
		}

		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startTime).Round(time.Second).String(),
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	})
}
