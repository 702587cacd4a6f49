// file: internals/features/files/attachments/controller/attachment_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertiku_backend/internals/constants"
	"propertiku_backend/internals/features/files/attachments/model"
	helper "propertiku_backend/internals/helpers"
	helperOSS "propertiku_backend/internals/helpers/oss"
)

type AttachmentController struct {
	DB *gorm.DB
}

func NewAttachmentController(db *gorm.DB) *AttachmentController {
	return &AttachmentController{DB: db}
}

var allowedOwnerTypes = map[string]struct{}{
	model.AttachmentOwnerLease:    {},
	model.AttachmentOwnerProperty: {},
	model.AttachmentOwnerTenant:   {},
	model.AttachmentOwnerLandlord: {},
	model.AttachmentOwnerPayment:  {},
	model.AttachmentOwnerExpense:  {},
}

// POST /api/attachments  (multipart: file + owner_type + owner_id [+ label])
func (ctl *AttachmentController) UploadAttachment(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	ownerType := c.FormValue("owner_type")
	if _, ok := allowedOwnerTypes[ownerType]; !ok {
		return helper.Error(c, fiber.StatusBadRequest, "owner_type tidak valid")
	}
	ownerID, err := uuid.Parse(c.FormValue("owner_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "owner_id tidak valid")
	}

	fh, err := helperOSS.GetFormFile(c, "file", "attachment")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var fileURL string
	if constants.IsImageExt(fh.Filename) {
		fileURL, err = helperOSS.UploadImageToOSSScoped(agencyID, "attachments/"+ownerType, fh)
	} else {
		fileURL, _, err = helperOSS.UploadFileToOSSScoped(agencyID, "attachments/"+ownerType, fh)
	}
	if err != nil {
		log.Printf("[ERROR] upload attachment: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal upload file")
	}

	att := model.AttachmentModel{
		AttachmentAgencyID:  agencyID,
		AttachmentOwnerType: ownerType,
		AttachmentOwnerID:   ownerID,
		AttachmentFileURL:   fileURL,
		AttachmentFileType:  constants.DetectFileTypeFromExt(fh.Filename),
		AttachmentFileSize:  fh.Size,
	}
	if label := c.FormValue("label"); label != "" {
		att.AttachmentLabel = &label
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&att).Error; err != nil {
		log.Printf("[ERROR] simpan attachment: %v", err)
		// row gagal, blob sudah naik: coba bersihkan
		if delErr := helperOSS.DeleteByPublicURLENV(fileURL, 10*time.Second); delErr != nil {
			log.Printf("[WARN] rollback blob attachment: %v", delErr)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan attachment")
	}

	return helper.JsonCreated(c, "Attachment berhasil diupload", att)
}

// GET /api/attachments?owner_type=&owner_id=
func (ctl *AttachmentController) ListAttachments(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.AttachmentModel{}).
		Where("attachment_agency_id = ?", agencyID)

	if ownerType := c.Query("owner_type"); ownerType != "" {
		tx = tx.Where("attachment_owner_type = ?", ownerType)
	}
	if ownerIDStr := c.Query("owner_id"); ownerIDStr != "" {
		ownerID, err := uuid.Parse(ownerIDStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "owner_id tidak valid")
		}
		tx = tx.Where("attachment_owner_id = ?", ownerID)
	}

	var attachments []model.AttachmentModel
	if err := tx.Order("attachment_created_at DESC").Find(&attachments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attachment")
	}

	return helper.JsonOK(c, "Daftar attachment berhasil diambil", attachments)
}

// DELETE /api/attachments/:id
// Row dulu, lalu blob. Kegagalan hapus blob hanya dicatat.
func (ctl *AttachmentController) DeleteAttachment(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	attachmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID attachment tidak valid")
	}

	var att model.AttachmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attachment_id = ? AND attachment_agency_id = ?", attachmentID, agencyID).
		First(&att).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attachment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attachment")
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&att).Error; err != nil {
		log.Printf("[ERROR] delete attachment %s: %v", attachmentID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus attachment")
	}

	if err := helperOSS.DeleteByPublicURLENV(att.AttachmentFileURL, 10*time.Second); err != nil {
		log.Printf("[WARN] hapus blob attachment %s: %v", attachmentID, err)
	}

	return helper.JsonDeleted(c, "Attachment berhasil dihapus", fiber.Map{"attachment_id": attachmentID})
}
