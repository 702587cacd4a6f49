// file: internals/features/agency/agencies/controller/agency_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/agency/agencies/dto"
	"propertiku_backend/internals/features/agency/agencies/model"
	helper "propertiku_backend/internals/helpers"
)

type AgencyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAgencyController(db *gorm.DB) *AgencyController {
	return &AgencyController{DB: db, Validator: validator.New()}
}

// ownedAgency memastikan caller adalah owner agency tsb.
func (ctl *AgencyController) ownedAgency(c *fiber.Ctx, agencyID uuid.UUID) (*model.AgencyModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	var agency model.AgencyModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("agency_id = ? AND agency_owner_user_id = ?", agencyID, userID).
		First(&agency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Agency tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil agency")
	}
	return &agency, nil
}

// POST /api/agencies
func (ctl *AgencyController) CreateAgency(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	agency := req.ToModel(userID)
	if err := ctl.DB.WithContext(c.Context()).Create(agency).Error; err != nil {
		log.Printf("[ERROR] create agency: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat agency")
	}

	return helper.JsonCreated(c, "Agency berhasil dibuat", dto.FromModel(*agency))
}

// GET /api/agencies  (agency yang dimiliki atau diikuti caller)
func (ctl *AgencyController) GetMyAgencies(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var agencies []model.AgencyModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("agency_owner_user_id = ?", userID).
		Or("agency_id IN (?)",
			ctl.DB.Model(&model.AgencyStaffModel{}).
				Select("agency_staff_agency_id").
				Where("agency_staff_user_id = ?", userID)).
		Order("agency_created_at DESC").
		Find(&agencies).Error; err != nil {
		log.Printf("[ERROR] list agencies: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil agency")
	}

	return helper.JsonOK(c, "Daftar agency berhasil diambil", dto.FromModels(agencies))
}

// GET /api/agencies/:id
func (ctl *AgencyController) GetAgencyByID(c *fiber.Ctx) error {
	agencyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID agency tidak valid")
	}

	var agency model.AgencyModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("agency_id = ?", agencyID).
		First(&agency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Agency tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil agency")
	}

	return helper.JsonOK(c, "Agency berhasil diambil", dto.FromModel(agency))
}

// PUT /api/agencies/:id  (owner only)
func (ctl *AgencyController) UpdateAgency(c *fiber.Ctx) error {
	agencyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID agency tidak valid")
	}

	agency, ferr := ctl.ownedAgency(c, agencyID)
	if ferr != nil {
		var fe *fiber.Error
		if errors.As(ferr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, ferr.Error())
	}

	var req dto.UpdateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.AgencyName != nil {
		agency.AgencyName = *req.AgencyName
	}
	if req.AgencyAddress != nil {
		agency.AgencyAddress = req.AgencyAddress
	}
	if req.AgencyPhone != nil {
		agency.AgencyPhone = req.AgencyPhone
	}
	if req.AgencyEmail != nil {
		agency.AgencyEmail = req.AgencyEmail
	}

	if err := ctl.DB.WithContext(c.Context()).Save(agency).Error; err != nil {
		log.Printf("[ERROR] update agency %s: %v", agencyID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui agency")
	}

	return helper.JsonUpdated(c, "Agency berhasil diperbarui", dto.FromModel(*agency))
}

// DELETE /api/agencies/:id  (owner only, soft delete)
func (ctl *AgencyController) DeleteAgency(c *fiber.Ctx) error {
	agencyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID agency tidak valid")
	}

	agency, ferr := ctl.ownedAgency(c, agencyID)
	if ferr != nil {
		var fe *fiber.Error
		if errors.As(ferr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, ferr.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(agency).Error; err != nil {
		log.Printf("[ERROR] delete agency %s: %v", agencyID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus agency")
	}

	return helper.JsonDeleted(c, "Agency berhasil dihapus", fiber.Map{"agency_id": agencyID})
}

/* =========================================================
   Staff membership
   ========================================================= */

// POST /api/agencies/:id/staffs  (owner only)
func (ctl *AgencyController) AddStaff(c *fiber.Ctx) error {
	agencyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID agency tidak valid")
	}

	if _, ferr := ctl.ownedAgency(c, agencyID); ferr != nil {
		var fe *fiber.Error
		if errors.As(ferr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, ferr.Error())
	}

	var req dto.AddStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	staff := model.AgencyStaffModel{
		AgencyStaffAgencyID: agencyID,
		AgencyStaffUserID:   req.UserID,
		AgencyStaffRole:     req.Role,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&staff).Error; err != nil {
		log.Printf("[ERROR] add staff agency %s: %v", agencyID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menambah staff")
	}

	return helper.JsonCreated(c, "Staff berhasil ditambahkan", staff)
}

// GET /api/agencies/:id/staffs
func (ctl *AgencyController) ListStaffs(c *fiber.Ctx) error {
	agencyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID agency tidak valid")
	}

	var staffs []model.AgencyStaffModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("agency_staff_agency_id = ?", agencyID).
		Order("agency_staff_created_at ASC").
		Find(&staffs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil staff")
	}

	return helper.JsonOK(c, "Daftar staff berhasil diambil", staffs)
}

// DELETE /api/agencies/:id/staffs/:staffId  (owner only)
func (ctl *AgencyController) RemoveStaff(c *fiber.Ctx) error {
	agencyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID agency tidak valid")
	}
	staffID, err := uuid.Parse(c.Params("staffId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID staff tidak valid")
	}

	if _, ferr := ctl.ownedAgency(c, agencyID); ferr != nil {
		var fe *fiber.Error
		if errors.As(ferr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, ferr.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("agency_staff_id = ? AND agency_staff_agency_id = ?", staffID, agencyID).
		Delete(&model.AgencyStaffModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus staff")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Staff tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Staff berhasil dihapus", fiber.Map{"agency_staff_id": staffID})
}
