// file: internals/features/lease/leases/controller/lease_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/lease/leases/dto"
	"propertiku_backend/internals/features/lease/leases/model"
	"propertiku_backend/internals/features/lease/leases/service"
	helper "propertiku_backend/internals/helpers"
)

type LeaseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Schedule  *service.ScheduleService
}

func NewLeaseController(db *gorm.DB) *LeaseController {
	return &LeaseController{
		DB:        db,
		Validator: validator.New(),
		Schedule:  service.NewScheduleService(db),
	}
}

/* =========================================================
   POST /api/leases
   ========================================================= */

func (ctl *LeaseController) CreateLease(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateLeaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Guard pihak kontrak sesuai tipe
	switch model.LeaseType(req.LeaseType) {
	case model.LeaseTypeTenant:
		if req.LeaseTenantID == nil {
			return helper.Error(c, fiber.StatusBadRequest, "lease_tenant_id wajib untuk lease tipe TENANT")
		}
	case model.LeaseTypeLandlord:
		if req.LeaseLandlordID == nil {
			return helper.Error(c, fiber.StatusBadRequest, "lease_landlord_id wajib untuk lease tipe LANDLORD")
		}
	}

	lease, err := req.ToModel(agencyID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Create(lease).Error; err != nil {
		log.Printf("[ERROR] create lease: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat lease")
	}

	return helper.JsonCreated(c, "Lease berhasil dibuat", dto.FromModel(*lease))
}

/* =========================================================
   GET /api/leases  (list + filter + pagination)
   ========================================================= */

func (ctl *LeaseController) GetAllLeases(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var q dto.ListLeaseQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.LeaseModel{}).
		Where("lease_agency_id = ?", agencyID)

	if q.Type != nil && *q.Type != "" {
		tx = tx.Where("lease_type = ?", *q.Type)
	}
	if q.Status != nil && *q.Status != "" {
		tx = tx.Where("lease_status = ?", *q.Status)
	}
	if q.PropertyID != nil {
		tx = tx.Where("lease_property_id = ?", *q.PropertyID)
	}
	if q.TenantID != nil {
		tx = tx.Where("lease_tenant_id = ?", *q.TenantID)
	}
	if q.LandlordID != nil {
		tx = tx.Where("lease_landlord_id = ?", *q.LandlordID)
	}
	if q.Q != nil && *q.Q != "" {
		tx = tx.Where("lease_notes ILIKE ?", "%"+*q.Q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count leases: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data lease")
	}

	var leases []model.LeaseModel
	if err := tx.
		Order("lease_start_date DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&leases).Error; err != nil {
		log.Printf("[ERROR] list leases: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data lease")
	}

	return helper.JsonList(c, "Daftar lease berhasil diambil",
		dto.FromModels(leases),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================================================
   GET /api/leases/:id
   ========================================================= */

func (ctl *LeaseController) GetLeaseByID(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	leaseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID lease tidak valid")
	}

	var lease model.LeaseModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("lease_id = ? AND lease_agency_id = ?", leaseID, agencyID).
		First(&lease).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lease tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil lease")
	}

	return helper.JsonOK(c, "Lease berhasil diambil", dto.FromModel(lease))
}

/* =========================================================
   PATCH /api/leases/:id  (partial update tri-state)
   ========================================================= */

func (ctl *LeaseController) PatchLease(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	leaseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID lease tidak valid")
	}

	var lease model.LeaseModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("lease_id = ? AND lease_agency_id = ?", leaseID, agencyID).
		First(&lease).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lease tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil lease")
	}

	var req dto.PatchLeaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.ApplyTo(&lease); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&lease).Error; err != nil {
		log.Printf("[ERROR] patch lease %s: %v", leaseID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui lease")
	}

	return helper.JsonUpdated(c, "Lease berhasil diperbarui", dto.FromModel(lease))
}

/* =========================================================
   DELETE /api/leases/:id  (soft delete)
   ========================================================= */

func (ctl *LeaseController) DeleteLease(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	leaseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID lease tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("lease_id = ? AND lease_agency_id = ?", leaseID, agencyID).
		Delete(&model.LeaseModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete lease %s: %v", leaseID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus lease")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Lease tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Lease berhasil dihapus", fiber.Map{"lease_id": leaseID})
}

/* =========================================================
   POST /api/leases/:id/generate-schedule?months=N
   ========================================================= */

func (ctl *LeaseController) GenerateSchedule(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	leaseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID lease tidak valid")
	}

	months := service.DefaultMonthsIfNoEnd
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return helper.Error(c, fiber.StatusBadRequest, "Parameter months tidak valid")
		}
		months = n
	}

	generated, err := ctl.Schedule.GenerateSchedule(c.Context(), agencyID, leaseID, months)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeaseNotFound),
			errors.Is(err, service.ErrPropertyNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidStartDate),
			errors.Is(err, service.ErrInvalidAmount),
			errors.Is(err, service.ErrMissingTenant),
			errors.Is(err, service.ErrMissingLandlord):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Printf("[ERROR] generate schedule lease %s: %v", leaseID, err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat jadwal sewa")
		}
	}

	log.Printf("[SUCCESS] schedule generated: lease=%s rows=%d", leaseID, generated)
	return helper.JsonCreated(c, "Jadwal sewa berhasil dibuat", fiber.Map{
		"lease_id":  leaseID,
		"generated": generated,
	})
}
