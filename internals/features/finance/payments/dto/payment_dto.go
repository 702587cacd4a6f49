// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "propertiku_backend/internals/features/finance/payments/model"
)

func parseDateYMD(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.UTC)
}

type CreatePaymentRequest struct {
	PaymentLeaseID    uuid.UUID  `json:"payment_lease_id" validate:"required"`
	PaymentTenantID   uuid.UUID  `json:"payment_tenant_id" validate:"required"`
	PaymentPropertyID uuid.UUID  `json:"payment_property_id" validate:"required"`
	PaymentBuildingID *uuid.UUID `json:"payment_building_id"`

	// "YYYY-MM-DD"
	PaymentDueDate  string  `json:"payment_due_date" validate:"required,datetime=2006-01-02"`
	PaymentAmount   float64 `json:"payment_amount" validate:"required,gt=0"`
	PaymentCurrency *string `json:"payment_currency" validate:"omitempty,max=8"`

	PaymentKind  *string `json:"payment_kind" validate:"omitempty,oneof=RENT DEPOSIT PENALTY OTHER"`
	PaymentNotes *string `json:"payment_notes"`
}

func (r *CreatePaymentRequest) ToModel(agencyID uuid.UUID) (*model.PaymentModel, error) {
	due, err := parseDateYMD(r.PaymentDueDate)
	if err != nil {
		return nil, errors.New("payment_due_date tidak valid (pakai format YYYY-MM-DD)")
	}

	p := &model.PaymentModel{
		PaymentAgencyID:   agencyID,
		PaymentLeaseID:    r.PaymentLeaseID,
		PaymentTenantID:   r.PaymentTenantID,
		PaymentPropertyID: r.PaymentPropertyID,
		PaymentBuildingID: r.PaymentBuildingID,
		PaymentDueDate:    due,
		PaymentAmount:     r.PaymentAmount,
		PaymentCurrency:   "IDR",
		PaymentKind:       model.PaymentKindRent,
		PaymentStatus:     model.PaymentStatusPlanned,
		PaymentNotes:      r.PaymentNotes,
	}
	if r.PaymentCurrency != nil && *r.PaymentCurrency != "" {
		p.PaymentCurrency = strings.ToUpper(strings.TrimSpace(*r.PaymentCurrency))
	}
	if r.PaymentKind != nil {
		p.PaymentKind = model.PaymentKind(*r.PaymentKind)
	}
	return p, nil
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string  `json:"payment_status" validate:"required,oneof=PLANNED PAID OVERDUE CANCELED"`
	PaymentPaidAt *string `json:"payment_paid_at" validate:"omitempty,datetime=2006-01-02"`
}

type ListPaymentQuery struct {
	LeaseID  *uuid.UUID `query:"lease_id"`
	TenantID *uuid.UUID `query:"tenant_id"`
	Status   *string    `query:"status"`
	Month    *string    `query:"month"` // "YYYY-MM"
}

// CheckoutRequest: data customer untuk Snap.
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone"`
}

// MidtransNotification: payload webhook yang relevan saja.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}
