// file: internals/features/property/properties/controller/property_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/property/properties/dto"
	"propertiku_backend/internals/features/property/properties/model"
	helper "propertiku_backend/internals/helpers"
	helperOSS "propertiku_backend/internals/helpers/oss"
)

type PropertyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{DB: db, Validator: validator.New()}
}

func (ctl *PropertyController) findScoped(c *fiber.Ctx, agencyID, propertyID uuid.UUID) (*model.PropertyModel, error) {
	var prop model.PropertyModel
	err := ctl.DB.WithContext(c.Context()).
		Where("property_id = ? AND property_agency_id = ?", propertyID, agencyID).
		First(&prop).Error
	if err != nil {
		return nil, err
	}
	return &prop, nil
}

// POST /api/properties
func (ctl *PropertyController) CreateProperty(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	prop := req.ToModel(agencyID)
	if err := ctl.DB.WithContext(c.Context()).Create(prop).Error; err != nil {
		log.Printf("[ERROR] create property: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat property")
	}

	return helper.JsonCreated(c, "Property berhasil dibuat", prop)
}

// GET /api/properties
func (ctl *PropertyController) GetAllProperties(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.PropertyModel{}).
		Where("property_agency_id = ?", agencyID)

	if buildingID := c.Query("building_id"); buildingID != "" {
		id, err := uuid.Parse(buildingID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "building_id tidak valid")
		}
		tx = tx.Where("property_building_id = ?", id)
	}
	if q := c.Query("q"); q != "" {
		tx = tx.Where("property_label ILIKE ? OR property_address ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data property")
	}

	var props []model.PropertyModel
	if err := tx.
		Order("property_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&props).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data property")
	}

	return helper.JsonList(c, "Daftar property berhasil diambil", props,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/properties/:id
func (ctl *PropertyController) GetPropertyByID(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	propertyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID property tidak valid")
	}

	prop, err := ctl.findScoped(c, agencyID, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Property tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil property")
	}

	return helper.JsonOK(c, "Property berhasil diambil", prop)
}

// PUT /api/properties/:id
func (ctl *PropertyController) UpdateProperty(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	propertyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID property tidak valid")
	}

	prop, err := ctl.findScoped(c, agencyID, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Property tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil property")
	}

	var req dto.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(prop)
	if err := ctl.DB.WithContext(c.Context()).Save(prop).Error; err != nil {
		log.Printf("[ERROR] update property %s: %v", propertyID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui property")
	}

	return helper.JsonUpdated(c, "Property berhasil diperbarui", prop)
}

// POST /api/properties/:id/image
// Multipart upload, dikonversi WebP, lama dihapus kalau ada.
func (ctl *PropertyController) UploadPropertyImage(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	propertyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID property tidak valid")
	}

	prop, err := ctl.findScoped(c, agencyID, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Property tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil property")
	}

	fh, err := helperOSS.GetFormFile(c, "image", "file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	url, err := helperOSS.UploadImageToOSSScoped(agencyID, "properties", fh)
	if err != nil {
		log.Printf("[ERROR] upload property image: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal upload gambar")
	}

	oldURL := prop.PropertyImageURL
	prop.PropertyImageURL = &url
	if err := ctl.DB.WithContext(c.Context()).Save(prop).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan URL gambar")
	}

	// gambar lama dihapus best-effort
	if oldURL != nil && *oldURL != "" {
		if err := helperOSS.DeleteByPublicURLENV(*oldURL, 10*time.Second); err != nil {
			log.Printf("[WARN] hapus gambar lama: %v", err)
		}
	}

	return helper.JsonUpdated(c, "Gambar property berhasil diupload", fiber.Map{
		"property_id":        prop.PropertyID,
		"property_image_url": url,
	})
}

// DELETE /api/properties/:id
func (ctl *PropertyController) DeleteProperty(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	propertyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID property tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("property_id = ? AND property_agency_id = ?", propertyID, agencyID).
		Delete(&model.PropertyModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete property %s: %v", propertyID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus property")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Property tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Property berhasil dihapus", fiber.Map{"property_id": propertyID})
}
