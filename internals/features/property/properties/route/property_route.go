// file: internals/features/property/properties/route/property_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/property/properties/controller"
)

func PropertyRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPropertyController(db)

	properties := api.Group("/properties")
	properties.Post("/", ctl.CreateProperty)
	properties.Get("/", ctl.GetAllProperties)
	properties.Get("/:id", ctl.GetPropertyByID)
	properties.Put("/:id", ctl.UpdateProperty)
	properties.Delete("/:id", ctl.DeleteProperty)

	properties.Post("/:id/image", ctl.UploadPropertyImage)
}
