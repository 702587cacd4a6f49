// file: internals/features/property/properties/dto/property_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "propertiku_backend/internals/features/property/properties/model"
)

type CreatePropertyRequest struct {
	PropertyBuildingID *uuid.UUID `json:"property_building_id"`

	PropertyLabel      string  `json:"property_label" validate:"required,min=2,max=120"`
	PropertyAddress    string  `json:"property_address" validate:"required"`
	PropertyUnitNumber *string `json:"property_unit_number" validate:"omitempty,max=24"`

	PropertyBedrooms  *int16 `json:"property_bedrooms" validate:"omitempty,min=0,max=50"`
	PropertyFurnished bool   `json:"property_furnished"`

	PropertyAmenities datatypes.JSON `json:"property_amenities"`
	PropertyNotes     *string        `json:"property_notes"`
}

func (r *CreatePropertyRequest) ToModel(agencyID uuid.UUID) *model.PropertyModel {
	return &model.PropertyModel{
		PropertyAgencyID:   agencyID,
		PropertyBuildingID: r.PropertyBuildingID,
		PropertyLabel:      r.PropertyLabel,
		PropertyAddress:    r.PropertyAddress,
		PropertyUnitNumber: r.PropertyUnitNumber,
		PropertyBedrooms:   r.PropertyBedrooms,
		PropertyFurnished:  r.PropertyFurnished,
		PropertyAmenities:  r.PropertyAmenities,
		PropertyNotes:      r.PropertyNotes,
	}
}

type UpdatePropertyRequest struct {
	PropertyBuildingID *uuid.UUID `json:"property_building_id"`

	PropertyLabel      *string `json:"property_label" validate:"omitempty,min=2,max=120"`
	PropertyAddress    *string `json:"property_address"`
	PropertyUnitNumber *string `json:"property_unit_number" validate:"omitempty,max=24"`

	PropertyBedrooms  *int16 `json:"property_bedrooms" validate:"omitempty,min=0,max=50"`
	PropertyFurnished *bool  `json:"property_furnished"`

	PropertyAmenities datatypes.JSON `json:"property_amenities"`
	PropertyNotes     *string        `json:"property_notes"`
}

func (r *UpdatePropertyRequest) ApplyTo(p *model.PropertyModel) {
	if r.PropertyBuildingID != nil {
		p.PropertyBuildingID = r.PropertyBuildingID
	}
	if r.PropertyLabel != nil {
		p.PropertyLabel = *r.PropertyLabel
	}
	if r.PropertyAddress != nil {
		p.PropertyAddress = *r.PropertyAddress
	}
	if r.PropertyUnitNumber != nil {
		p.PropertyUnitNumber = r.PropertyUnitNumber
	}
	if r.PropertyBedrooms != nil {
		p.PropertyBedrooms = r.PropertyBedrooms
	}
	if r.PropertyFurnished != nil {
		p.PropertyFurnished = *r.PropertyFurnished
	}
	if len(r.PropertyAmenities) > 0 {
		p.PropertyAmenities = r.PropertyAmenities
	}
	if r.PropertyNotes != nil {
		p.PropertyNotes = r.PropertyNotes
	}
}
