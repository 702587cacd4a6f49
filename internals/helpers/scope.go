// helpers/scope.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// --- util kecil biar gak duplikasi parsing ---
func firstUUIDFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}

	switch t := v.(type) {
	case []string:
		if len(t) == 0 || strings.TrimSpace(t[0]) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
		}
		return uuid.Parse(strings.TrimSpace(t[0]))
	case []interface{}:
		if len(t) == 0 {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
		}
		if s, ok := t[0].(string); ok {
			return uuid.Parse(strings.TrimSpace(s))
		}
	case interface{}:
		if s, ok := t.(string); ok {
			if strings.TrimSpace(s) == "" {
				return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
			}
			return uuid.Parse(strings.TrimSpace(s))
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
}

// === ADMIN ===
func GetAgencyIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "agency_admin_ids")
}

// === STAFF ===
func GetStaffAgencyIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "agency_staff_ids")
}

// === Prefer ADMIN lalu fallback ke STAFF/UNION ===
func GetAgencyIDFromTokenPreferAdmin(c *fiber.Ctx) (uuid.UUID, error) {
	if id, err := firstUUIDFromLocals(c, "agency_admin_ids"); err == nil {
		return id, nil
	}
	if id, err := firstUUIDFromLocals(c, "agency_staff_ids"); err == nil {
		return id, nil
	}
	return firstUUIDFromLocals(c, "agency_ids")
}

// === USER ID dari Locals (diset auth middleware) ===
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	return uuid.Parse(strings.TrimSpace(s))
}
