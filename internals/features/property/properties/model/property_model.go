// file: internals/features/property/properties/model/property_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyModel struct {
	PropertyID uuid.UUID `json:"property_id" gorm:"column:property_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Selalu tenant-scoped (NOT NULL)
	PropertyAgencyID uuid.UUID `json:"property_agency_id" gorm:"column:property_agency_id;type:uuid;not null"`

	// Grouping opsional: unit bisa berdiri sendiri atau bagian dari gedung
	PropertyBuildingID *uuid.UUID `json:"property_building_id,omitempty" gorm:"column:property_building_id;type:uuid"`

	PropertyLabel      string  `json:"property_label" gorm:"column:property_label;type:varchar(120);not null"`
	PropertyAddress    string  `json:"property_address" gorm:"column:property_address;type:text;not null"`
	PropertyUnitNumber *string `json:"property_unit_number,omitempty" gorm:"column:property_unit_number;type:varchar(24)"`

	PropertyBedrooms  *int16 `json:"property_bedrooms,omitempty" gorm:"column:property_bedrooms;type:smallint"`
	PropertyFurnished bool   `json:"property_furnished" gorm:"column:property_furnished;not null;default:false"`

	// Foto utama (OSS) + fasilitas bebas (JSONB)
	PropertyImageURL  *string        `json:"property_image_url,omitempty" gorm:"column:property_image_url;type:text"`
	PropertyAmenities datatypes.JSON `json:"property_amenities,omitempty" gorm:"column:property_amenities;type:jsonb"`

	PropertyNotes *string `json:"property_notes,omitempty" gorm:"column:property_notes;type:text"`

	PropertyCreatedAt time.Time      `json:"property_created_at" gorm:"column:property_created_at;type:timestamptz;not null;default:now()"`
	PropertyUpdatedAt time.Time      `json:"property_updated_at" gorm:"column:property_updated_at;type:timestamptz;not null;default:now()"`
	PropertyDeletedAt gorm.DeletedAt `json:"property_deleted_at,omitempty" gorm:"column:property_deleted_at;type:timestamptz;index"`
}

func (PropertyModel) TableName() string { return "properties" }

func (p *PropertyModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if p.PropertyCreatedAt.IsZero() {
		p.PropertyCreatedAt = now
	}
	p.PropertyUpdatedAt = now
	return nil
}

func (p *PropertyModel) BeforeUpdate(tx *gorm.DB) error {
	p.PropertyUpdatedAt = time.Now().UTC()
	return nil
}
