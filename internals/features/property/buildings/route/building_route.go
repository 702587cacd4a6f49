// file: internals/features/property/buildings/route/building_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/property/buildings/controller"
)

func BuildingRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewBuildingController(db)

	buildings := api.Group("/buildings")
	buildings.Post("/", ctl.CreateBuilding)
	buildings.Get("/", ctl.GetAllBuildings)
	buildings.Get("/:id", ctl.GetBuildingByID)
	buildings.Put("/:id", ctl.UpdateBuilding)
	buildings.Delete("/:id", ctl.DeleteBuilding)
}
