// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/users/auth/controller"
	"propertiku_backend/internals/middlewares"
)

// AuthPublicRoutes: endpoint tanpa token (login/register/refresh).
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh-token", ctl.RefreshToken)
}

// AuthProtectedRoutes: endpoint yang butuh access token valid.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/logout", ctl.Logout)
	auth.Post("/change-password", ctl.ChangePassword)
}
