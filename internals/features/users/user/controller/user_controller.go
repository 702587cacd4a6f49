// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/constants"
	"propertiku_backend/internals/features/users/user/dto"
	"propertiku_backend/internals/features/users/user/model"
	helper "propertiku_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

// GET /api/users (hanya owner/admin)
func (ctl *UserController) GetAllUsers(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	if role != constants.RoleOwner && role != constants.RoleAdmin {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorAdmin("daftar user"))
	}

	var q dto.ListUserQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.UserModel{})
	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}
	if s := strings.TrimSpace(q.Q); s != "" {
		pattern := "%" + s + "%"
		tx = tx.Where("user_name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count users: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	var users []model.UserModel
	if err := tx.Order("created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonList(c, "Daftar user berhasil diambil", dto.FromModels(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/users/me
func (ctl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonOK(c, "Profil berhasil diambil", dto.FromModel(user))
}

// PUT /api/users/me
func (ctl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update me: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.FromModel(user))
}
