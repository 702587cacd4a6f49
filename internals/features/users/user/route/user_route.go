// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/users/user/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", ctl.GetAllUsers)
	users.Get("/me", ctl.GetMe)
	users.Put("/me", ctl.UpdateMe)
}
