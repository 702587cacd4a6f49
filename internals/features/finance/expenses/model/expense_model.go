// file: internals/features/finance/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
   Mirror dari SQL:

   - expense_agency_id        UUID NOT NULL
   - expense_lease_id         UUID NULL   (NULL = pengeluaran manual tanpa kontrak)
   - expense_property_id      UUID NOT NULL
   - expense_landlord_id      UUID NULL
   - expense_building_id      UUID NULL
   - expense_cost_date        DATE NOT NULL
   - expense_cost_month       VARCHAR(7) NOT NULL  -- period key "YYYY-MM"
   - expense_amount           NUMERIC(14,2) NOT NULL CHECK (>= 0)
   - expense_currency         VARCHAR(8) NOT NULL DEFAULT 'IDR'
   - expense_type             expense_type NOT NULL DEFAULT 'OTHER'
   - expense_frequency        expense_frequency NOT NULL DEFAULT 'ONCE'
   - expense_scope            expense_scope NOT NULL DEFAULT 'UNIT'
   - expense_allocation_mode  expense_allocation NOT NULL DEFAULT 'NONE'
   - expense_status           expense_status NOT NULL DEFAULT 'PLANNED'
   - expense_notes            TEXT NULL
   - created_at / updated_at / deleted_at
*/

type ExpenseType string

const (
	ExpenseTypeRentToLandlord ExpenseType = "RENT_TO_LANDLORD"
	ExpenseTypeMaintenance    ExpenseType = "MAINTENANCE"
	ExpenseTypeUtility        ExpenseType = "UTILITY"
	ExpenseTypeTax            ExpenseType = "TAX"
	ExpenseTypeOther          ExpenseType = "OTHER"
)

type ExpenseFrequency string

const (
	ExpenseFrequencyOnce    ExpenseFrequency = "ONCE"
	ExpenseFrequencyMonthly ExpenseFrequency = "MONTHLY"
)

type ExpenseScope string

const (
	ExpenseScopeUnit     ExpenseScope = "UNIT"
	ExpenseScopeBuilding ExpenseScope = "BUILDING"
)

type ExpenseAllocationMode string

const (
	ExpenseAllocationNone    ExpenseAllocationMode = "NONE"
	ExpenseAllocationPerUnit ExpenseAllocationMode = "PER_UNIT"
)

type ExpenseStatus string

const (
	ExpenseStatusPlanned  ExpenseStatus = "PLANNED"
	ExpenseStatusPaid     ExpenseStatus = "PAID"
	ExpenseStatusCanceled ExpenseStatus = "CANCELED"
)

type ExpenseModel struct {
	ExpenseID uuid.UUID `json:"expense_id" gorm:"column:expense_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ExpenseAgencyID uuid.UUID `json:"expense_agency_id" gorm:"column:expense_agency_id;type:uuid;not null"`

	ExpenseLeaseID    *uuid.UUID `json:"expense_lease_id,omitempty" gorm:"column:expense_lease_id;type:uuid"`
	ExpensePropertyID uuid.UUID  `json:"expense_property_id" gorm:"column:expense_property_id;type:uuid;not null"`
	ExpenseLandlordID *uuid.UUID `json:"expense_landlord_id,omitempty" gorm:"column:expense_landlord_id;type:uuid"`
	ExpenseBuildingID *uuid.UUID `json:"expense_building_id,omitempty" gorm:"column:expense_building_id;type:uuid"`

	ExpenseCostDate  time.Time `json:"expense_cost_date" gorm:"column:expense_cost_date;type:date;not null"`
	ExpenseCostMonth string    `json:"expense_cost_month" gorm:"column:expense_cost_month;type:varchar(7);not null"`

	ExpenseAmount   float64 `json:"expense_amount" gorm:"column:expense_amount;type:numeric(14,2);not null"`
	ExpenseCurrency string  `json:"expense_currency" gorm:"column:expense_currency;type:varchar(8);not null;default:'IDR'"`

	ExpenseType           ExpenseType           `json:"expense_type" gorm:"column:expense_type;type:varchar(24);not null;default:'OTHER'"`
	ExpenseFrequency      ExpenseFrequency      `json:"expense_frequency" gorm:"column:expense_frequency;type:varchar(12);not null;default:'ONCE'"`
	ExpenseScope          ExpenseScope          `json:"expense_scope" gorm:"column:expense_scope;type:varchar(12);not null;default:'UNIT'"`
	ExpenseAllocationMode ExpenseAllocationMode `json:"expense_allocation_mode" gorm:"column:expense_allocation_mode;type:varchar(12);not null;default:'NONE'"`
	ExpenseStatus         ExpenseStatus         `json:"expense_status" gorm:"column:expense_status;type:varchar(16);not null;default:'PLANNED'"`

	ExpenseNotes *string `json:"expense_notes,omitempty" gorm:"column:expense_notes;type:text"`

	ExpenseCreatedAt time.Time      `json:"expense_created_at" gorm:"column:expense_created_at;type:timestamptz;not null;default:now()"`
	ExpenseUpdatedAt time.Time      `json:"expense_updated_at" gorm:"column:expense_updated_at;type:timestamptz;not null;default:now()"`
	ExpenseDeletedAt gorm.DeletedAt `json:"expense_deleted_at,omitempty" gorm:"column:expense_deleted_at;type:timestamptz;index"`
}

func (ExpenseModel) TableName() string { return "expenses" }

func (e *ExpenseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if e.ExpenseCreatedAt.IsZero() {
		e.ExpenseCreatedAt = now
	}
	e.ExpenseUpdatedAt = now
	return nil
}

func (e *ExpenseModel) BeforeUpdate(tx *gorm.DB) error {
	e.ExpenseUpdatedAt = time.Now().UTC()
	return nil
}
