// file: internals/features/agency/agencies/dto/agency_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "propertiku_backend/internals/features/agency/agencies/model"
)

type CreateAgencyRequest struct {
	AgencyName    string  `json:"agency_name" validate:"required,min=3,max=120"`
	AgencyAddress *string `json:"agency_address"`
	AgencyPhone   *string `json:"agency_phone" validate:"omitempty,max=30"`
	AgencyEmail   *string `json:"agency_email" validate:"omitempty,email"`
}

func (r *CreateAgencyRequest) ToModel(ownerUserID uuid.UUID) *model.AgencyModel {
	return &model.AgencyModel{
		AgencyOwnerUserID: ownerUserID,
		AgencyName:        r.AgencyName,
		AgencyAddress:     r.AgencyAddress,
		AgencyPhone:       r.AgencyPhone,
		AgencyEmail:       r.AgencyEmail,
	}
}

type UpdateAgencyRequest struct {
	AgencyName    *string `json:"agency_name" validate:"omitempty,min=3,max=120"`
	AgencyAddress *string `json:"agency_address"`
	AgencyPhone   *string `json:"agency_phone" validate:"omitempty,max=30"`
	AgencyEmail   *string `json:"agency_email" validate:"omitempty,email"`
}

type AddStaffRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=admin staff"`
}

type AgencyResponse struct {
	AgencyID          uuid.UUID `json:"agency_id"`
	AgencyOwnerUserID uuid.UUID `json:"agency_owner_user_id"`
	AgencyName        string    `json:"agency_name"`
	AgencyAddress     *string   `json:"agency_address,omitempty"`
	AgencyPhone       *string   `json:"agency_phone,omitempty"`
	AgencyEmail       *string   `json:"agency_email,omitempty"`
	AgencyLogoURL     *string   `json:"agency_logo_url,omitempty"`
	AgencyCreatedAt   time.Time `json:"agency_created_at"`
}

func FromModel(m model.AgencyModel) AgencyResponse {
	return AgencyResponse{
		AgencyID:          m.AgencyID,
		AgencyOwnerUserID: m.AgencyOwnerUserID,
		AgencyName:        m.AgencyName,
		AgencyAddress:     m.AgencyAddress,
		AgencyPhone:       m.AgencyPhone,
		AgencyEmail:       m.AgencyEmail,
		AgencyLogoURL:     m.AgencyLogoURL,
		AgencyCreatedAt:   m.AgencyCreatedAt,
	}
}

func FromModels(list []model.AgencyModel) []AgencyResponse {
	out := make([]AgencyResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
