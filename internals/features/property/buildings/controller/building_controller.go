// file: internals/features/property/buildings/controller/building_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/property/buildings/dto"
	"propertiku_backend/internals/features/property/buildings/model"
	helper "propertiku_backend/internals/helpers"
)

type BuildingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBuildingController(db *gorm.DB) *BuildingController {
	return &BuildingController{DB: db, Validator: validator.New()}
}

// POST /api/buildings
func (ctl *BuildingController) CreateBuilding(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateBuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	building := req.ToModel(agencyID)
	if err := ctl.DB.WithContext(c.Context()).Create(building).Error; err != nil {
		log.Printf("[ERROR] create building: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat building")
	}

	return helper.JsonCreated(c, "Building berhasil dibuat", building)
}

// GET /api/buildings
func (ctl *BuildingController) GetAllBuildings(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.BuildingModel{}).
		Where("building_agency_id = ?", agencyID)

	if q := c.Query("q"); q != "" {
		tx = tx.Where("building_name ILIKE ? OR building_address ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data building")
	}

	var buildings []model.BuildingModel
	if err := tx.
		Order("building_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&buildings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data building")
	}

	return helper.JsonList(c, "Daftar building berhasil diambil", buildings,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/buildings/:id
func (ctl *BuildingController) GetBuildingByID(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	buildingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID building tidak valid")
	}

	var building model.BuildingModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("building_id = ? AND building_agency_id = ?", buildingID, agencyID).
		First(&building).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Building tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil building")
	}

	return helper.JsonOK(c, "Building berhasil diambil", building)
}

// PUT /api/buildings/:id
func (ctl *BuildingController) UpdateBuilding(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	buildingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID building tidak valid")
	}

	var building model.BuildingModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("building_id = ? AND building_agency_id = ?", buildingID, agencyID).
		First(&building).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Building tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil building")
	}

	var req dto.UpdateBuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&building)
	if err := ctl.DB.WithContext(c.Context()).Save(&building).Error; err != nil {
		log.Printf("[ERROR] update building %s: %v", buildingID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui building")
	}

	return helper.JsonUpdated(c, "Building berhasil diperbarui", building)
}

// DELETE /api/buildings/:id
func (ctl *BuildingController) DeleteBuilding(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	buildingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID building tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("building_id = ? AND building_agency_id = ?", buildingID, agencyID).
		Delete(&model.BuildingModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete building %s: %v", buildingID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus building")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Building tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Building berhasil dihapus", fiber.Map{"building_id": buildingID})
}
