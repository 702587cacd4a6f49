// file: internals/features/finance/expenses/controller/expense_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/finance/expenses/dto"
	"propertiku_backend/internals/features/finance/expenses/model"
	helper "propertiku_backend/internals/helpers"
)

type ExpenseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db, Validator: validator.New()}
}

// POST /api/expenses
func (ctl *ExpenseController) CreateExpense(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	expense, err := req.ToModel(agencyID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Create(expense).Error; err != nil {
		log.Printf("[ERROR] create expense: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat expense")
	}

	return helper.JsonCreated(c, "Expense berhasil dibuat", expense)
}

// GET /api/expenses
func (ctl *ExpenseController) GetAllExpenses(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var q dto.ListExpenseQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.ExpenseModel{}).
		Where("expense_agency_id = ?", agencyID)

	if q.LeaseID != nil {
		tx = tx.Where("expense_lease_id = ?", *q.LeaseID)
	}
	if q.PropertyID != nil {
		tx = tx.Where("expense_property_id = ?", *q.PropertyID)
	}
	if q.LandlordID != nil {
		tx = tx.Where("expense_landlord_id = ?", *q.LandlordID)
	}
	if q.Status != nil && *q.Status != "" {
		tx = tx.Where("expense_status = ?", *q.Status)
	}
	if q.Type != nil && *q.Type != "" {
		tx = tx.Where("expense_type = ?", *q.Type)
	}
	if q.Month != nil && *q.Month != "" {
		tx = tx.Where("expense_cost_month = ?", *q.Month)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data expense")
	}

	var expenses []model.ExpenseModel
	if err := tx.
		Order("expense_cost_date ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&expenses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data expense")
	}

	return helper.JsonList(c, "Daftar expense berhasil diambil", expenses,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/expenses/:id
func (ctl *ExpenseController) GetExpenseByID(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID expense tidak valid")
	}

	var expense model.ExpenseModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("expense_id = ? AND expense_agency_id = ?", expenseID, agencyID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Expense tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil expense")
	}

	return helper.JsonOK(c, "Expense berhasil diambil", expense)
}

// PATCH /api/expenses/:id/status
func (ctl *ExpenseController) UpdateExpenseStatus(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID expense tidak valid")
	}

	var expense model.ExpenseModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("expense_id = ? AND expense_agency_id = ?", expenseID, agencyID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Expense tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil expense")
	}

	var req dto.UpdateExpenseStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	expense.ExpenseStatus = model.ExpenseStatus(req.ExpenseStatus)
	if err := ctl.DB.WithContext(c.Context()).Save(&expense).Error; err != nil {
		log.Printf("[ERROR] update expense status %s: %v", expenseID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status expense")
	}

	return helper.JsonUpdated(c, "Status expense berhasil diperbarui", expense)
}

// DELETE /api/expenses/:id
func (ctl *ExpenseController) DeleteExpense(c *fiber.Ctx) error {
	agencyID, err := helper.GetAgencyIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID expense tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("expense_id = ? AND expense_agency_id = ?", expenseID, agencyID).
		Delete(&model.ExpenseModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete expense %s: %v", expenseID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus expense")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Expense tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Expense berhasil dihapus", fiber.Map{"expense_id": expenseID})
}
