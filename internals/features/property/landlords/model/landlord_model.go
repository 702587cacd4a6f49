// file: internals/features/property/landlords/model/landlord_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LandlordModel = pemilik unit (pihak yang menerima setoran sewa).
type LandlordModel struct {
	LandlordID uuid.UUID `json:"landlord_id" gorm:"column:landlord_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	LandlordAgencyID uuid.UUID `json:"landlord_agency_id" gorm:"column:landlord_agency_id;type:uuid;not null"`

	LandlordName        string  `json:"landlord_name" gorm:"column:landlord_name;type:varchar(120);not null"`
	LandlordEmail       *string `json:"landlord_email,omitempty" gorm:"column:landlord_email;type:varchar(255)"`
	LandlordPhone       *string `json:"landlord_phone,omitempty" gorm:"column:landlord_phone;type:varchar(32)"`
	LandlordBankAccount *string `json:"landlord_bank_account,omitempty" gorm:"column:landlord_bank_account;type:varchar(64)"`
	LandlordNotes       *string `json:"landlord_notes,omitempty" gorm:"column:landlord_notes;type:text"`

	LandlordCreatedAt time.Time      `json:"landlord_created_at" gorm:"column:landlord_created_at;type:timestamptz;not null;default:now()"`
	LandlordUpdatedAt time.Time      `json:"landlord_updated_at" gorm:"column:landlord_updated_at;type:timestamptz;not null;default:now()"`
	LandlordDeletedAt gorm.DeletedAt `json:"landlord_deleted_at,omitempty" gorm:"column:landlord_deleted_at;type:timestamptz;index"`
}

func (LandlordModel) TableName() string { return "landlords" }

func (l *LandlordModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if l.LandlordCreatedAt.IsZero() {
		l.LandlordCreatedAt = now
	}
	l.LandlordUpdatedAt = now
	return nil
}

func (l *LandlordModel) BeforeUpdate(tx *gorm.DB) error {
	l.LandlordUpdatedAt = time.Now().UTC()
	return nil
}
