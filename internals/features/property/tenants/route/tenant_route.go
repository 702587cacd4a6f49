// file: internals/features/property/tenants/route/tenant_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/property/tenants/controller"
)

func TenantRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTenantController(db)

	tenants := api.Group("/tenants")
	tenants.Post("/", ctl.CreateTenant)
	tenants.Get("/", ctl.GetAllTenants)
	tenants.Get("/:id", ctl.GetTenantByID)
	tenants.Put("/:id", ctl.UpdateTenant)
	tenants.Delete("/:id", ctl.DeleteTenant)
}
