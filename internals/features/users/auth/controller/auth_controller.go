// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "propertiku_backend/internals/features/users/auth/service"
)

// AuthController tipis: semua logic di service.
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ctl.DB, c)
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctl.DB, c)
}

func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ctl.DB, c)
}

func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ctl.DB, c)
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctl.DB, c)
}

func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ctl.DB, c)
}
