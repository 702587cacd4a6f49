// file: internals/features/finance/expenses/dto/expense_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "propertiku_backend/internals/features/finance/expenses/model"
)

func parseDateYMD(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.UTC)
}

type CreateExpenseRequest struct {
	ExpenseLeaseID    *uuid.UUID `json:"expense_lease_id"`
	ExpensePropertyID uuid.UUID  `json:"expense_property_id" validate:"required"`
	ExpenseLandlordID *uuid.UUID `json:"expense_landlord_id"`
	ExpenseBuildingID *uuid.UUID `json:"expense_building_id"`

	// "YYYY-MM-DD"
	ExpenseCostDate string  `json:"expense_cost_date" validate:"required,datetime=2006-01-02"`
	ExpenseAmount   float64 `json:"expense_amount" validate:"required,gt=0"`
	ExpenseCurrency *string `json:"expense_currency" validate:"omitempty,max=8"`

	ExpenseType           *string `json:"expense_type" validate:"omitempty,oneof=RENT_TO_LANDLORD MAINTENANCE UTILITY TAX OTHER"`
	ExpenseFrequency      *string `json:"expense_frequency" validate:"omitempty,oneof=ONCE MONTHLY"`
	ExpenseScope          *string `json:"expense_scope" validate:"omitempty,oneof=UNIT BUILDING"`
	ExpenseAllocationMode *string `json:"expense_allocation_mode" validate:"omitempty,oneof=NONE PER_UNIT"`

	ExpenseNotes *string `json:"expense_notes"`
}

func (r *CreateExpenseRequest) ToModel(agencyID uuid.UUID) (*model.ExpenseModel, error) {
	costDate, err := parseDateYMD(r.ExpenseCostDate)
	if err != nil {
		return nil, errors.New("expense_cost_date tidak valid (pakai format YYYY-MM-DD)")
	}

	e := &model.ExpenseModel{
		ExpenseAgencyID:       agencyID,
		ExpenseLeaseID:        r.ExpenseLeaseID,
		ExpensePropertyID:     r.ExpensePropertyID,
		ExpenseLandlordID:     r.ExpenseLandlordID,
		ExpenseBuildingID:     r.ExpenseBuildingID,
		ExpenseCostDate:       costDate,
		ExpenseCostMonth:      costDate.Format("2006-01"),
		ExpenseAmount:         r.ExpenseAmount,
		ExpenseCurrency:       "IDR",
		ExpenseType:           model.ExpenseTypeOther,
		ExpenseFrequency:      model.ExpenseFrequencyOnce,
		ExpenseScope:          model.ExpenseScopeUnit,
		ExpenseAllocationMode: model.ExpenseAllocationNone,
		ExpenseStatus:         model.ExpenseStatusPlanned,
		ExpenseNotes:          r.ExpenseNotes,
	}
	if r.ExpenseCurrency != nil && *r.ExpenseCurrency != "" {
		e.ExpenseCurrency = strings.ToUpper(strings.TrimSpace(*r.ExpenseCurrency))
	}
	if r.ExpenseType != nil {
		e.ExpenseType = model.ExpenseType(*r.ExpenseType)
	}
	if r.ExpenseFrequency != nil {
		e.ExpenseFrequency = model.ExpenseFrequency(*r.ExpenseFrequency)
	}
	if r.ExpenseScope != nil {
		e.ExpenseScope = model.ExpenseScope(*r.ExpenseScope)
	}
	if r.ExpenseAllocationMode != nil {
		e.ExpenseAllocationMode = model.ExpenseAllocationMode(*r.ExpenseAllocationMode)
	}
	return e, nil
}

type UpdateExpenseStatusRequest struct {
	ExpenseStatus string `json:"expense_status" validate:"required,oneof=PLANNED PAID CANCELED"`
}

type ListExpenseQuery struct {
	LeaseID    *uuid.UUID `query:"lease_id"`
	PropertyID *uuid.UUID `query:"property_id"`
	LandlordID *uuid.UUID `query:"landlord_id"`
	Status     *string    `query:"status"`
	Type       *string    `query:"type"`
	Month      *string    `query:"month"` // "YYYY-MM", cocok dengan expense_cost_month
}
