// file: internals/features/property/buildings/dto/building_dto.go
package dto

import (
	"github.com/google/uuid"

	model "propertiku_backend/internals/features/property/buildings/model"
)

type CreateBuildingRequest struct {
	BuildingName    string  `json:"building_name" validate:"required,min=2,max=120"`
	BuildingAddress string  `json:"building_address" validate:"required"`
	BuildingNotes   *string `json:"building_notes"`
}

func (r *CreateBuildingRequest) ToModel(agencyID uuid.UUID) *model.BuildingModel {
	return &model.BuildingModel{
		BuildingAgencyID: agencyID,
		BuildingName:     r.BuildingName,
		BuildingAddress:  r.BuildingAddress,
		BuildingNotes:    r.BuildingNotes,
	}
}

type UpdateBuildingRequest struct {
	BuildingName    *string `json:"building_name" validate:"omitempty,min=2,max=120"`
	BuildingAddress *string `json:"building_address"`
	BuildingNotes   *string `json:"building_notes"`
}

func (r *UpdateBuildingRequest) ApplyTo(b *model.BuildingModel) {
	if r.BuildingName != nil {
		b.BuildingName = *r.BuildingName
	}
	if r.BuildingAddress != nil {
		b.BuildingAddress = *r.BuildingAddress
	}
	if r.BuildingNotes != nil {
		b.BuildingNotes = r.BuildingNotes
	}
}
