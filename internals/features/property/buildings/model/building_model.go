// file: internals/features/property/buildings/model/building_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BuildingModel struct {
	BuildingID uuid.UUID `json:"building_id" gorm:"column:building_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	BuildingAgencyID uuid.UUID `json:"building_agency_id" gorm:"column:building_agency_id;type:uuid;not null"`

	BuildingName    string  `json:"building_name" gorm:"column:building_name;type:varchar(120);not null"`
	BuildingAddress string  `json:"building_address" gorm:"column:building_address;type:text;not null"`
	BuildingNotes   *string `json:"building_notes,omitempty" gorm:"column:building_notes;type:text"`

	BuildingCreatedAt time.Time      `json:"building_created_at" gorm:"column:building_created_at;type:timestamptz;not null;default:now()"`
	BuildingUpdatedAt time.Time      `json:"building_updated_at" gorm:"column:building_updated_at;type:timestamptz;not null;default:now()"`
	BuildingDeletedAt gorm.DeletedAt `json:"building_deleted_at,omitempty" gorm:"column:building_deleted_at;type:timestamptz;index"`
}

func (BuildingModel) TableName() string { return "buildings" }

func (b *BuildingModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if b.BuildingCreatedAt.IsZero() {
		b.BuildingCreatedAt = now
	}
	b.BuildingUpdatedAt = now
	return nil
}

func (b *BuildingModel) BeforeUpdate(tx *gorm.DB) error {
	b.BuildingUpdatedAt = time.Now().UTC()
	return nil
}
