// file: internals/features/lease/leases/route/lease_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/lease/leases/controller"
)

// LeaseRoutes: /api/leases (auth wajib, scope agency dari token)
func LeaseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaseController(db)

	leases := api.Group("/leases")
	leases.Post("/", ctl.CreateLease)
	leases.Get("/", ctl.GetAllLeases)
	leases.Get("/:id", ctl.GetLeaseByID)
	leases.Patch("/:id", ctl.PatchLease)
	leases.Delete("/:id", ctl.DeleteLease)

	// Core: generate jadwal tagihan bulanan
	leases.Post("/:id/generate-schedule", ctl.GenerateSchedule)
}
