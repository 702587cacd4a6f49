// file: internals/features/property/landlords/controller/landlord_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/property/landlords/dto"
	"propertiku_backend/internals/features/property/landlords/model"
	helper "propertiku_backend/internals/helpers"
)

type LandlordController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLandlordController(db *gorm.DB) *LandlordController {
	return &LandlordController{DB: db, Validator: validator.New()}
}

// POST /api/landlords
func (ctl *LandlordController) CreateLandlord(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateLandlordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	landlord := req.ToModel(agencyID)
	if err := ctl.DB.WithContext(c.Context()).Create(landlord).Error; err != nil {
		log.Printf("[ERROR] create landlord: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat landlord")
	}

	return helper.JsonCreated(c, "Landlord berhasil dibuat", landlord)
}

// GET /api/landlords
func (ctl *LandlordController) GetAllLandlords(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.LandlordModel{}).
		Where("landlord_agency_id = ?", agencyID)

	if q := c.Query("q"); q != "" {
		tx = tx.Where("landlord_name ILIKE ? OR landlord_email ILIKE ? OR landlord_phone ILIKE ?",
			"%"+q+"%", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data landlord")
	}

	var landlords []model.LandlordModel
	if err := tx.
		Order("landlord_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&landlords).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data landlord")
	}

	return helper.JsonList(c, "Daftar landlord berhasil diambil", landlords,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/landlords/:id
func (ctl *LandlordController) GetLandlordByID(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	landlordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID landlord tidak valid")
	}

	var landlord model.LandlordModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("landlord_id = ? AND landlord_agency_id = ?", landlordID, agencyID).
		First(&landlord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Landlord tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil landlord")
	}

	return helper.JsonOK(c, "Landlord berhasil diambil", landlord)
}

// PUT /api/landlords/:id
func (ctl *LandlordController) UpdateLandlord(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	landlordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID landlord tidak valid")
	}

	var landlord model.LandlordModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("landlord_id = ? AND landlord_agency_id = ?", landlordID, agencyID).
		First(&landlord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Landlord tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil landlord")
	}

	var req dto.UpdateLandlordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&landlord)
	if err := ctl.DB.WithContext(c.Context()).Save(&landlord).Error; err != nil {
		log.Printf("[ERROR] update landlord %s: %v", landlordID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui landlord")
	}

	return helper.JsonUpdated(c, "Landlord berhasil diperbarui", landlord)
}

// DELETE /api/landlords/:id
func (ctl *LandlordController) DeleteLandlord(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	landlordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID landlord tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("landlord_id = ? AND landlord_agency_id = ?", landlordID, agencyID).
		Delete(&model.LandlordModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete landlord %s: %v", landlordID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus landlord")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Landlord tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Landlord berhasil dihapus", fiber.Map{"landlord_id": landlordID})
}
