// file: internals/features/property/tenants/controller/tenant_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/property/tenants/dto"
	"propertiku_backend/internals/features/property/tenants/model"
	helper "propertiku_backend/internals/helpers"
)

type TenantController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db, Validator: validator.New()}
}

// POST /api/tenants
func (ctl *TenantController) CreateTenant(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	tenant := req.ToModel(agencyID)
	if err := ctl.DB.WithContext(c.Context()).Create(tenant).Error; err != nil {
		log.Printf("[ERROR] create tenant: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat tenant")
	}

	return helper.JsonCreated(c, "Tenant berhasil dibuat", tenant)
}

// GET /api/tenants
func (ctl *TenantController) GetAllTenants(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.TenantModel{}).
		Where("tenant_agency_id = ?", agencyID)

	if q := c.Query("q"); q != "" {
		tx = tx.Where("tenant_name ILIKE ? OR tenant_email ILIKE ? OR tenant_phone ILIKE ?",
			"%"+q+"%", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data tenant")
	}

	var tenants []model.TenantModel
	if err := tx.
		Order("tenant_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&tenants).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data tenant")
	}

	return helper.JsonList(c, "Daftar tenant berhasil diambil", tenants,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/tenants/:id
func (ctl *TenantController) GetTenantByID(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	tenantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tenant tidak valid")
	}

	var tenant model.TenantModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("tenant_id = ? AND tenant_agency_id = ?", tenantID, agencyID).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tenant tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tenant")
	}

	return helper.JsonOK(c, "Tenant berhasil diambil", tenant)
}

// PUT /api/tenants/:id
func (ctl *TenantController) UpdateTenant(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	tenantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tenant tidak valid")
	}

	var tenant model.TenantModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("tenant_id = ? AND tenant_agency_id = ?", tenantID, agencyID).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tenant tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tenant")
	}

	var req dto.UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&tenant)
	if err := ctl.DB.WithContext(c.Context()).Save(&tenant).Error; err != nil {
		log.Printf("[ERROR] update tenant %s: %v", tenantID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui tenant")
	}

	return helper.JsonUpdated(c, "Tenant berhasil diperbarui", tenant)
}

// DELETE /api/tenants/:id
func (ctl *TenantController) DeleteTenant(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	tenantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tenant tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("tenant_id = ? AND tenant_agency_id = ?", tenantID, agencyID).
		Delete(&model.TenantModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete tenant %s: %v", tenantID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus tenant")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Tenant tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Tenant berhasil dihapus", fiber.Map{"tenant_id": tenantID})
}
