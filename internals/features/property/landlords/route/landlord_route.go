// file: internals/features/property/landlords/route/landlord_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/property/landlords/controller"
)

func LandlordRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLandlordController(db)

	landlords := api.Group("/landlords")
	landlords.Post("/", ctl.CreateLandlord)
	landlords.Get("/", ctl.GetAllLandlords)
	landlords.Get("/:id", ctl.GetLandlordByID)
	landlords.Put("/:id", ctl.UpdateLandlord)
	landlords.Delete("/:id", ctl.DeleteLandlord)
}
