// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
   Mirror dari SQL:

   - payment_agency_id     UUID NOT NULL
   - payment_lease_id      UUID NOT NULL
   - payment_tenant_id     UUID NOT NULL
   - payment_property_id   UUID NOT NULL
   - payment_building_id   UUID NULL
   - payment_due_date      DATE NOT NULL
   - payment_amount        NUMERIC(14,2) NOT NULL CHECK (>= 0)
   - payment_currency      VARCHAR(8) NOT NULL DEFAULT 'IDR'
   - payment_kind          payment_kind NOT NULL DEFAULT 'RENT'
   - payment_status        payment_status NOT NULL DEFAULT 'PLANNED'
   - payment_paid_at       TIMESTAMPTZ NULL
   - payment_order_id      VARCHAR(64) NULL  (order id Midtrans)
   - payment_notes         TEXT NULL
   - created_at / updated_at / deleted_at
*/

type PaymentKind string

const (
	PaymentKindRent    PaymentKind = "RENT"
	PaymentKindDeposit PaymentKind = "DEPOSIT"
	PaymentKindPenalty PaymentKind = "PENALTY"
	PaymentKindOther   PaymentKind = "OTHER"
)

type PaymentStatus string

const (
	PaymentStatusPlanned  PaymentStatus = "PLANNED"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusOverdue  PaymentStatus = "OVERDUE"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

type PaymentModel struct {
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Selalu tenant-scoped (NOT NULL)
	PaymentAgencyID uuid.UUID `json:"payment_agency_id" gorm:"column:payment_agency_id;type:uuid;not null"`

	PaymentLeaseID    uuid.UUID  `json:"payment_lease_id" gorm:"column:payment_lease_id;type:uuid;not null"`
	PaymentTenantID   uuid.UUID  `json:"payment_tenant_id" gorm:"column:payment_tenant_id;type:uuid;not null"`
	PaymentPropertyID uuid.UUID  `json:"payment_property_id" gorm:"column:payment_property_id;type:uuid;not null"`
	PaymentBuildingID *uuid.UUID `json:"payment_building_id,omitempty" gorm:"column:payment_building_id;type:uuid"`

	PaymentDueDate  time.Time `json:"payment_due_date" gorm:"column:payment_due_date;type:date;not null"`
	PaymentAmount   float64   `json:"payment_amount" gorm:"column:payment_amount;type:numeric(14,2);not null"`
	PaymentCurrency string    `json:"payment_currency" gorm:"column:payment_currency;type:varchar(8);not null;default:'IDR'"`

	PaymentKind   PaymentKind   `json:"payment_kind" gorm:"column:payment_kind;type:varchar(16);not null;default:'RENT'"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"column:payment_status;type:varchar(16);not null;default:'PLANNED'"`

	PaymentPaidAt  *time.Time `json:"payment_paid_at,omitempty" gorm:"column:payment_paid_at;type:timestamptz"`
	PaymentOrderID *string    `json:"payment_order_id,omitempty" gorm:"column:payment_order_id;type:varchar(64)"`
	PaymentNotes   *string    `json:"payment_notes,omitempty" gorm:"column:payment_notes;type:text"`

	PaymentCreatedAt time.Time      `json:"payment_created_at" gorm:"column:payment_created_at;type:timestamptz;not null;default:now()"`
	PaymentUpdatedAt time.Time      `json:"payment_updated_at" gorm:"column:payment_updated_at;type:timestamptz;not null;default:now()"`
	PaymentDeletedAt gorm.DeletedAt `json:"payment_deleted_at,omitempty" gorm:"column:payment_deleted_at;type:timestamptz;index"`
}

func (PaymentModel) TableName() string { return "payments" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if p.PaymentCreatedAt.IsZero() {
		p.PaymentCreatedAt = now
	}
	p.PaymentUpdatedAt = now
	return nil
}

func (p *PaymentModel) BeforeUpdate(tx *gorm.DB) error {
	p.PaymentUpdatedAt = time.Now().UTC()
	return nil
}
