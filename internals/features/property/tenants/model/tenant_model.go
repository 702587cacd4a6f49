// file: internals/features/property/tenants/model/tenant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantModel = penyewa unit (pihak yang membayar sewa).
type TenantModel struct {
	TenantID uuid.UUID `json:"tenant_id" gorm:"column:tenant_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	TenantAgencyID uuid.UUID `json:"tenant_agency_id" gorm:"column:tenant_agency_id;type:uuid;not null"`

	TenantName         string  `json:"tenant_name" gorm:"column:tenant_name;type:varchar(120);not null"`
	TenantEmail        *string `json:"tenant_email,omitempty" gorm:"column:tenant_email;type:varchar(255)"`
	TenantPhone        *string `json:"tenant_phone,omitempty" gorm:"column:tenant_phone;type:varchar(32)"`
	TenantIDCardNumber *string `json:"tenant_id_card_number,omitempty" gorm:"column:tenant_id_card_number;type:varchar(32)"`
	TenantNotes        *string `json:"tenant_notes,omitempty" gorm:"column:tenant_notes;type:text"`

	TenantCreatedAt time.Time      `json:"tenant_created_at" gorm:"column:tenant_created_at;type:timestamptz;not null;default:now()"`
	TenantUpdatedAt time.Time      `json:"tenant_updated_at" gorm:"column:tenant_updated_at;type:timestamptz;not null;default:now()"`
	TenantDeletedAt gorm.DeletedAt `json:"tenant_deleted_at,omitempty" gorm:"column:tenant_deleted_at;type:timestamptz;index"`
}

func (TenantModel) TableName() string { return "tenants" }

func (t *TenantModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if t.TenantCreatedAt.IsZero() {
		t.TenantCreatedAt = now
	}
	t.TenantUpdatedAt = now
	return nil
}

func (t *TenantModel) BeforeUpdate(tx *gorm.DB) error {
	t.TenantUpdatedAt = time.Now().UTC()
	return nil
}
