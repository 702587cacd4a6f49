// file: internals/features/users/auth/service/token_service.go
package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "propertiku_backend/internals/features/users/auth/repository"
	helper "propertiku_backend/internals/helpers"
)

// RefreshToken: POST /api/auth/refresh-token
// Validasi refresh JWT dari cookie, cek hash di DB, rotate, lalu
// terbitkan pasangan token baru.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Hash harus dikenal di DB (belum dirotasi / dicabut)
	h := computeRefreshHash(refreshCookie, refreshSecret)
	var exists bool
	if err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token_hash = ?)`, h).
		Scan(&exists).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama sebelum terbitkan yang baru
	if err := authRepo.DeleteRefreshTokenByHash(db, h); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	return issueTokens(c, db, *user)
}
