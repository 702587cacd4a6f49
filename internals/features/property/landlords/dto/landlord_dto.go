// file: internals/features/property/landlords/dto/landlord_dto.go
package dto

import (
	"github.com/google/uuid"

	model "propertiku_backend/internals/features/property/landlords/model"
)

type CreateLandlordRequest struct {
	LandlordName        string  `json:"landlord_name" validate:"required,min=2,max=120"`
	LandlordEmail       *string `json:"landlord_email" validate:"omitempty,email"`
	LandlordPhone       *string `json:"landlord_phone" validate:"omitempty,max=32"`
	LandlordBankAccount *string `json:"landlord_bank_account" validate:"omitempty,max=64"`
	LandlordNotes       *string `json:"landlord_notes"`
}

func (r *CreateLandlordRequest) ToModel(agencyID uuid.UUID) *model.LandlordModel {
	return &model.LandlordModel{
		LandlordAgencyID:    agencyID,
		LandlordName:        r.LandlordName,
		LandlordEmail:       r.LandlordEmail,
		LandlordPhone:       r.LandlordPhone,
		LandlordBankAccount: r.LandlordBankAccount,
		LandlordNotes:       r.LandlordNotes,
	}
}

type UpdateLandlordRequest struct {
	LandlordName        *string `json:"landlord_name" validate:"omitempty,min=2,max=120"`
	LandlordEmail       *string `json:"landlord_email" validate:"omitempty,email"`
	LandlordPhone       *string `json:"landlord_phone" validate:"omitempty,max=32"`
	LandlordBankAccount *string `json:"landlord_bank_account" validate:"omitempty,max=64"`
	LandlordNotes       *string `json:"landlord_notes"`
}

func (r *UpdateLandlordRequest) ApplyTo(l *model.LandlordModel) {
	if r.LandlordName != nil {
		l.LandlordName = *r.LandlordName
	}
	if r.LandlordEmail != nil {
		l.LandlordEmail = r.LandlordEmail
	}
	if r.LandlordPhone != nil {
		l.LandlordPhone = r.LandlordPhone
	}
	if r.LandlordBankAccount != nil {
		l.LandlordBankAccount = r.LandlordBankAccount
	}
	if r.LandlordNotes != nil {
		l.LandlordNotes = r.LandlordNotes
	}
}
