// file: internals/features/lease/leases/model/lease_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
   Mirror dari SQL:

   - lease_agency_id                   UUID NOT NULL
   - lease_type                        lease_type NOT NULL           -- 'TENANT' | 'LANDLORD'
   - lease_property_id                 UUID NOT NULL
   - lease_tenant_id                   UUID NULL  (wajib saat type=TENANT)
   - lease_landlord_id                 UUID NULL  (wajib saat type=LANDLORD)
   - lease_start_date                  DATE NOT NULL
   - lease_end_date                    DATE NULL
   - lease_next_payment_due            DATE NULL
   - lease_due_day_of_month            SMALLINT NOT NULL DEFAULT 5
   - lease_monthly_rent_without_bills  NUMERIC(14,2) NOT NULL
   - lease_monthly_rent_with_bills     NUMERIC(14,2) NULL
   - lease_bills_included_amount       NUMERIC(14,2) NULL
   - lease_deposit_amount              NUMERIC(14,2) NULL
   - lease_currency                    VARCHAR(8) NOT NULL DEFAULT 'IDR'
   - lease_status                      lease_status NOT NULL DEFAULT 'ACTIVE'
   - lease_notes                       TEXT NULL
   - created_at / updated_at / deleted_at
*/

type LeaseType string

const (
	// Kontrak dengan penyewa: schedule generator menulis payments.
	LeaseTypeTenant LeaseType = "TENANT"
	// Kontrak dengan pemilik unit: schedule generator menulis expenses.
	LeaseTypeLandlord LeaseType = "LANDLORD"
)

type LeaseStatus string

const (
	LeaseStatusDraft  LeaseStatus = "DRAFT"
	LeaseStatusActive LeaseStatus = "ACTIVE"
	LeaseStatusEnded  LeaseStatus = "ENDED"
)

// Default hari jatuh tempo bila lease tidak menentukan.
const DefaultDueDayOfMonth = 5

type LeaseModel struct {
	LeaseID uuid.UUID `json:"lease_id" gorm:"column:lease_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Selalu tenant-scoped (NOT NULL)
	LeaseAgencyID uuid.UUID `json:"lease_agency_id" gorm:"column:lease_agency_id;type:uuid;not null"`

	LeaseType LeaseType `json:"lease_type" gorm:"column:lease_type;type:varchar(12);not null"`

	LeasePropertyID uuid.UUID  `json:"lease_property_id" gorm:"column:lease_property_id;type:uuid;not null"`
	LeaseTenantID   *uuid.UUID `json:"lease_tenant_id,omitempty" gorm:"column:lease_tenant_id;type:uuid"`
	LeaseLandlordID *uuid.UUID `json:"lease_landlord_id,omitempty" gorm:"column:lease_landlord_id;type:uuid"`

	LeaseStartDate      time.Time  `json:"lease_start_date" gorm:"column:lease_start_date;type:date;not null"`
	LeaseEndDate        *time.Time `json:"lease_end_date,omitempty" gorm:"column:lease_end_date;type:date"`
	LeaseNextPaymentDue *time.Time `json:"lease_next_payment_due,omitempty" gorm:"column:lease_next_payment_due;type:date"`
	LeaseDueDayOfMonth  int16      `json:"lease_due_day_of_month" gorm:"column:lease_due_day_of_month;type:smallint;not null;default:5"`

	LeaseMonthlyRentWithoutBills float64  `json:"lease_monthly_rent_without_bills" gorm:"column:lease_monthly_rent_without_bills;type:numeric(14,2);not null"`
	LeaseMonthlyRentWithBills    *float64 `json:"lease_monthly_rent_with_bills,omitempty" gorm:"column:lease_monthly_rent_with_bills;type:numeric(14,2)"`
	LeaseBillsIncludedAmount     *float64 `json:"lease_bills_included_amount,omitempty" gorm:"column:lease_bills_included_amount;type:numeric(14,2)"`
	LeaseDepositAmount           *float64 `json:"lease_deposit_amount,omitempty" gorm:"column:lease_deposit_amount;type:numeric(14,2)"`

	LeaseCurrency string      `json:"lease_currency" gorm:"column:lease_currency;type:varchar(8);not null;default:'IDR'"`
	LeaseStatus   LeaseStatus `json:"lease_status" gorm:"column:lease_status;type:varchar(12);not null;default:'ACTIVE'"`
	LeaseNotes    *string     `json:"lease_notes,omitempty" gorm:"column:lease_notes;type:text"`

	LeaseCreatedAt time.Time      `json:"lease_created_at" gorm:"column:lease_created_at;type:timestamptz;not null;default:now()"`
	LeaseUpdatedAt time.Time      `json:"lease_updated_at" gorm:"column:lease_updated_at;type:timestamptz;not null;default:now()"`
	LeaseDeletedAt gorm.DeletedAt `json:"lease_deleted_at,omitempty" gorm:"column:lease_deleted_at;type:timestamptz;index"`
}

func (LeaseModel) TableName() string { return "leases" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (l *LeaseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if l.LeaseCreatedAt.IsZero() {
		l.LeaseCreatedAt = now
	}
	l.LeaseUpdatedAt = now
	if l.LeaseDueDayOfMonth == 0 {
		l.LeaseDueDayOfMonth = DefaultDueDayOfMonth
	}
	return nil
}

func (l *LeaseModel) BeforeUpdate(tx *gorm.DB) error {
	l.LeaseUpdatedAt = time.Now().UTC()
	return nil
}
