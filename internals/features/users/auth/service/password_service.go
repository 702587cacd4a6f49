// file: internals/features/users/auth/service/password_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "propertiku_backend/internals/features/users/auth/repository"
	helper "propertiku_backend/internals/helpers"
)

// ChangePassword: user login ganti password sendiri.
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if len(input.NewPassword) < 8 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Password baru minimal 8 karakter")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password baru")
	}

	if err := authRepo.UpdateUserPassword(db, userID, string(newHash)); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update password")
	}

	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}
