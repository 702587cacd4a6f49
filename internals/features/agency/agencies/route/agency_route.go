// file: internals/features/agency/agencies/route/agency_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/agency/agencies/controller"
)

func AgencyRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAgencyController(db)

	agencies := api.Group("/agencies")
	agencies.Post("/", ctl.CreateAgency)
	agencies.Get("/", ctl.GetMyAgencies)
	agencies.Get("/:id", ctl.GetAgencyByID)
	agencies.Put("/:id", ctl.UpdateAgency)
	agencies.Delete("/:id", ctl.DeleteAgency)

	agencies.Post("/:id/staffs", ctl.AddStaff)
	agencies.Get("/:id/staffs", ctl.ListStaffs)
	agencies.Delete("/:id/staffs/:staffId", ctl.RemoveStaff)
}
