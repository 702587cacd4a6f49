// file: internals/features/property/tenants/dto/tenant_dto.go
package dto

import (
	"github.com/google/uuid"

	model "propertiku_backend/internals/features/property/tenants/model"
)

type CreateTenantRequest struct {
	TenantName         string  `json:"tenant_name" validate:"required,min=2,max=120"`
	TenantEmail        *string `json:"tenant_email" validate:"omitempty,email"`
	TenantPhone        *string `json:"tenant_phone" validate:"omitempty,max=32"`
	TenantIDCardNumber *string `json:"tenant_id_card_number" validate:"omitempty,max=32"`
	TenantNotes        *string `json:"tenant_notes"`
}

func (r *CreateTenantRequest) ToModel(agencyID uuid.UUID) *model.TenantModel {
	return &model.TenantModel{
		TenantAgencyID:     agencyID,
		TenantName:         r.TenantName,
		TenantEmail:        r.TenantEmail,
		TenantPhone:        r.TenantPhone,
		TenantIDCardNumber: r.TenantIDCardNumber,
		TenantNotes:        r.TenantNotes,
	}
}

type UpdateTenantRequest struct {
	TenantName         *string `json:"tenant_name" validate:"omitempty,min=2,max=120"`
	TenantEmail        *string `json:"tenant_email" validate:"omitempty,email"`
	TenantPhone        *string `json:"tenant_phone" validate:"omitempty,max=32"`
	TenantIDCardNumber *string `json:"tenant_id_card_number" validate:"omitempty,max=32"`
	TenantNotes        *string `json:"tenant_notes"`
}

func (r *UpdateTenantRequest) ApplyTo(t *model.TenantModel) {
	if r.TenantName != nil {
		t.TenantName = *r.TenantName
	}
	if r.TenantEmail != nil {
		t.TenantEmail = r.TenantEmail
	}
	if r.TenantPhone != nil {
		t.TenantPhone = r.TenantPhone
	}
	if r.TenantIDCardNumber != nil {
		t.TenantIDCardNumber = r.TenantIDCardNumber
	}
	if r.TenantNotes != nil {
		t.TenantNotes = r.TenantNotes
	}
}
