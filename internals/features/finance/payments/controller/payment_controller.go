// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/finance/payments/dto"
	"propertiku_backend/internals/features/finance/payments/model"
	"propertiku_backend/internals/features/finance/payments/service"
	helper "propertiku_backend/internals/helpers"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validator: validator.New()}
}

func (ctl *PaymentController) findScoped(c *fiber.Ctx, agencyID, paymentID uuid.UUID) (*model.PaymentModel, error) {
	var payment model.PaymentModel
	err := ctl.DB.WithContext(c.Context()).
		Where("payment_id = ? AND payment_agency_id = ?", paymentID, agencyID).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// POST /api/payments  (tagihan manual di luar generator)
func (ctl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	payment, err := req.ToModel(agencyID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Create(payment).Error; err != nil {
		log.Printf("[ERROR] create payment: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat payment")
	}

	return helper.JsonCreated(c, "Payment berhasil dibuat", payment)
}

// GET /api/payments
func (ctl *PaymentController) GetAllPayments(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var q dto.ListPaymentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.PaymentModel{}).
		Where("payment_agency_id = ?", agencyID)

	if q.LeaseID != nil {
		tx = tx.Where("payment_lease_id = ?", *q.LeaseID)
	}
	if q.TenantID != nil {
		tx = tx.Where("payment_tenant_id = ?", *q.TenantID)
	}
	if q.Status != nil && *q.Status != "" {
		tx = tx.Where("payment_status = ?", *q.Status)
	}
	if q.Month != nil && *q.Month != "" {
		monthStart, err := time.ParseInLocation("2006-01", *q.Month, time.UTC)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Parameter month tidak valid (pakai YYYY-MM)")
		}
		tx = tx.Where("payment_due_date >= ? AND payment_due_date < ?",
			monthStart, monthStart.AddDate(0, 1, 0))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data payment")
	}

	var payments []model.PaymentModel
	if err := tx.
		Order("payment_due_date ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data payment")
	}

	return helper.JsonList(c, "Daftar payment berhasil diambil", payments,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/payments/:id
func (ctl *PaymentController) GetPaymentByID(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID payment tidak valid")
	}

	payment, err := ctl.findScoped(c, agencyID, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Payment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil payment")
	}

	return helper.JsonOK(c, "Payment berhasil diambil", payment)
}

// PATCH /api/payments/:id/status
func (ctl *PaymentController) UpdatePaymentStatus(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID payment tidak valid")
	}

	payment, err := ctl.findScoped(c, agencyID, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Payment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil payment")
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	payment.PaymentStatus = model.PaymentStatus(req.PaymentStatus)
	switch payment.PaymentStatus {
	case model.PaymentStatusPaid:
		paidAt := time.Now().UTC()
		if req.PaymentPaidAt != nil {
			if t, err := time.ParseInLocation("2006-01-02", *req.PaymentPaidAt, time.UTC); err == nil {
				paidAt = t
			}
		}
		payment.PaymentPaidAt = &paidAt
	default:
		payment.PaymentPaidAt = nil
	}

	if err := ctl.DB.WithContext(c.Context()).Save(payment).Error; err != nil {
		log.Printf("[ERROR] update payment status %s: %v", paymentID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status payment")
	}

	return helper.JsonUpdated(c, "Status payment berhasil diperbarui", payment)
}

// DELETE /api/payments/:id
func (ctl *PaymentController) DeletePayment(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID payment tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("payment_id = ? AND payment_agency_id = ?", paymentID, agencyID).
		Delete(&model.PaymentModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete payment %s: %v", paymentID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus payment")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Payment tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Payment berhasil dihapus", fiber.Map{"payment_id": paymentID})
}

/* =========================================================
   Midtrans Snap checkout + webhook
   ========================================================= */

// POST /api/payments/:id/checkout
func (ctl *PaymentController) Checkout(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID payment tidak valid")
	}

	payment, err := ctl.findScoped(c, agencyID, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Payment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil payment")
	}
	if payment.PaymentStatus == model.PaymentStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "Payment sudah dibayar")
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// order id stabil per payment; checkout ulang memakai order id yang sama
	if payment.PaymentOrderID == nil || *payment.PaymentOrderID == "" {
		orderID := fmt.Sprintf("PAY-%s-%d", payment.PaymentID.String()[:8], time.Now().Unix())
		payment.PaymentOrderID = &orderID
		if err := ctl.DB.WithContext(c.Context()).Save(payment).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan order id")
		}
	}

	token, redirectURL, err := service.GenerateSnapToken(*payment, service.CustomerInput{
		FirstName: req.CustomerName,
		Email:     req.CustomerEmail,
		Phone:     req.CustomerPhone,
	})
	if err != nil {
		log.Printf("[ERROR] snap checkout payment %s: %v", paymentID, err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans")
	}

	return helper.JsonOK(c, "Checkout berhasil dibuat", fiber.Map{
		"payment_id":   payment.PaymentID,
		"order_id":     payment.PaymentOrderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// POST /api/payments/notification
// Webhook Midtrans, tanpa auth (path di-skip middleware).
func (ctl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload notifikasi tidak valid")
	}
	if notif.OrderID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "order_id kosong")
	}

	var payment model.PaymentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("payment_order_id = ?", notif.OrderID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// balas 200 supaya Midtrans tidak retry terus untuk order asing
			log.Printf("[WARN] notifikasi untuk order tak dikenal: %s", notif.OrderID)
			return helper.JsonOK(c, "OK", nil)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil payment")
	}

	switch notif.TransactionStatus {
	case "capture":
		if notif.FraudStatus == "accept" {
			now := time.Now().UTC()
			payment.PaymentStatus = model.PaymentStatusPaid
			payment.PaymentPaidAt = &now
		}
	case "settlement":
		now := time.Now().UTC()
		payment.PaymentStatus = model.PaymentStatusPaid
		payment.PaymentPaidAt = &now
	case "cancel", "deny", "expire":
		if payment.PaymentStatus != model.PaymentStatusPaid {
			payment.PaymentStatus = model.PaymentStatusCanceled
		}
	case "pending":
		// biarkan status sekarang
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&payment).Error; err != nil {
		log.Printf("[ERROR] simpan notifikasi order %s: %v", notif.OrderID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui payment")
	}

	log.Printf("[SUCCESS] notifikasi midtrans: order=%s status=%s", notif.OrderID, notif.TransactionStatus)
	return helper.JsonOK(c, "OK", fiber.Map{"order_id": notif.OrderID, "payment_status": payment.PaymentStatus})
}
