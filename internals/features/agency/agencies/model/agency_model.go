// file: internals/features/agency/agencies/model/agency_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgencyModel: satu agency = satu tenant. Semua data domain
// (properties, leases, payments, expenses) ter-scope ke agency_id.
type AgencyModel struct {
	AgencyID          uuid.UUID `json:"agency_id" gorm:"column:agency_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyOwnerUserID uuid.UUID `json:"agency_owner_user_id" gorm:"column:agency_owner_user_id;type:uuid;not null"`

	AgencyName    string  `json:"agency_name" gorm:"column:agency_name;type:varchar(120);not null"`
	AgencyAddress *string `json:"agency_address,omitempty" gorm:"column:agency_address;type:text"`
	AgencyPhone   *string `json:"agency_phone,omitempty" gorm:"column:agency_phone;type:varchar(30)"`
	AgencyEmail   *string `json:"agency_email,omitempty" gorm:"column:agency_email;type:varchar(255)"`
	AgencyLogoURL *string `json:"agency_logo_url,omitempty" gorm:"column:agency_logo_url;type:text"`

	AgencyCreatedAt time.Time      `json:"agency_created_at" gorm:"column:agency_created_at;type:timestamptz;not null;default:now()"`
	AgencyUpdatedAt time.Time      `json:"agency_updated_at" gorm:"column:agency_updated_at;type:timestamptz;not null;default:now()"`
	AgencyDeletedAt gorm.DeletedAt `json:"agency_deleted_at,omitempty" gorm:"column:agency_deleted_at;type:timestamptz;index"`
}

func (AgencyModel) TableName() string { return "agencies" }

func (a *AgencyModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if a.AgencyCreatedAt.IsZero() {
		a.AgencyCreatedAt = now
	}
	a.AgencyUpdatedAt = now
	return nil
}

func (a *AgencyModel) BeforeUpdate(tx *gorm.DB) error {
	a.AgencyUpdatedAt = time.Now().UTC()
	return nil
}
