// file: internals/features/lease/leases/dto/lease_dto.go
package dto

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	model "propertiku_backend/internals/features/lease/leases/model"
)

/* =========================================================
   PatchField tri-state (Unset / Null / Set(value))
   =========================================================

   Membedakan "field tidak dikirim" vs "dikirim null" vs "dikirim
   nilai". Absent = biarkan, null = kosongkan, nilai = timpa.
*/

type PatchField[T any] struct {
	Set   bool `json:"-"`
	Null  bool `json:"-"`
	Value *T   `json:"-"`
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Null = true
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

/* =========================================================
   Util tanggal "YYYY-MM-DD"
   ========================================================= */

func parseDateYMD(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.UTC)
}

/* =========================================================
   Konsistensi nominal (dicek saat CREATE, bukan saat generate)
   ========================================================= */

// Toleransi pembulatan untuk cek gross = net + bills.
const AmountTolerance = 0.01

var ErrInconsistentAmounts = errors.New(
	"nominal tidak konsisten: monthly_rent_without_bills harus = monthly_rent_with_bills - bills_included_amount")

// ValidateAmountConsistency: saat gross & bills dua-duanya dikirim,
// net harus = gross - bills (toleransi 0.01).
func ValidateAmountConsistency(without float64, with, bills *float64) error {
	if with == nil || bills == nil {
		return nil
	}
	if math.Abs(without-(*with-*bills)) > AmountTolerance {
		return ErrInconsistentAmounts
	}
	return nil
}

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateLeaseRequest struct {
	LeaseType string `json:"lease_type" validate:"required,oneof=TENANT LANDLORD"`

	LeasePropertyID uuid.UUID  `json:"lease_property_id" validate:"required"`
	LeaseTenantID   *uuid.UUID `json:"lease_tenant_id"`
	LeaseLandlordID *uuid.UUID `json:"lease_landlord_id"`

	// "YYYY-MM-DD"
	LeaseStartDate      string  `json:"lease_start_date" validate:"required,datetime=2006-01-02"`
	LeaseEndDate        *string `json:"lease_end_date" validate:"omitempty,datetime=2006-01-02"`
	LeaseNextPaymentDue *string `json:"lease_next_payment_due" validate:"omitempty,datetime=2006-01-02"`

	LeaseDueDayOfMonth *int16 `json:"lease_due_day_of_month" validate:"omitempty,min=1,max=31"`

	LeaseMonthlyRentWithoutBills float64  `json:"lease_monthly_rent_without_bills" validate:"min=0"`
	LeaseMonthlyRentWithBills    *float64 `json:"lease_monthly_rent_with_bills" validate:"omitempty,min=0"`
	LeaseBillsIncludedAmount     *float64 `json:"lease_bills_included_amount" validate:"omitempty,min=0"`
	LeaseDepositAmount           *float64 `json:"lease_deposit_amount" validate:"omitempty,min=0"`

	LeaseCurrency *string `json:"lease_currency" validate:"omitempty,max=8"`
	LeaseNotes    *string `json:"lease_notes"`
}

func (r *CreateLeaseRequest) ToModel(agencyID uuid.UUID) (*model.LeaseModel, error) {
	if err := ValidateAmountConsistency(r.LeaseMonthlyRentWithoutBills, r.LeaseMonthlyRentWithBills, r.LeaseBillsIncludedAmount); err != nil {
		return nil, err
	}

	start, err := parseDateYMD(r.LeaseStartDate)
	if err != nil {
		return nil, errors.New("lease_start_date tidak valid (pakai format YYYY-MM-DD)")
	}

	m := &model.LeaseModel{
		LeaseAgencyID:                agencyID,
		LeaseType:                    model.LeaseType(r.LeaseType),
		LeasePropertyID:              r.LeasePropertyID,
		LeaseTenantID:                r.LeaseTenantID,
		LeaseLandlordID:              r.LeaseLandlordID,
		LeaseStartDate:               start,
		LeaseDueDayOfMonth:           model.DefaultDueDayOfMonth,
		LeaseMonthlyRentWithoutBills: r.LeaseMonthlyRentWithoutBills,
		LeaseMonthlyRentWithBills:    r.LeaseMonthlyRentWithBills,
		LeaseBillsIncludedAmount:     r.LeaseBillsIncludedAmount,
		LeaseDepositAmount:           r.LeaseDepositAmount,
		LeaseCurrency:                "IDR",
		LeaseStatus:                  model.LeaseStatusActive,
		LeaseNotes:                   r.LeaseNotes,
	}

	if r.LeaseDueDayOfMonth != nil {
		m.LeaseDueDayOfMonth = *r.LeaseDueDayOfMonth
	}
	if r.LeaseCurrency != nil && *r.LeaseCurrency != "" {
		m.LeaseCurrency = strings.ToUpper(strings.TrimSpace(*r.LeaseCurrency))
	}
	if r.LeaseEndDate != nil && *r.LeaseEndDate != "" {
		t, err := parseDateYMD(*r.LeaseEndDate)
		if err != nil {
			return nil, errors.New("lease_end_date tidak valid (pakai format YYYY-MM-DD)")
		}
		m.LeaseEndDate = &t
	}
	if r.LeaseNextPaymentDue != nil && *r.LeaseNextPaymentDue != "" {
		t, err := parseDateYMD(*r.LeaseNextPaymentDue)
		if err != nil {
			return nil, errors.New("lease_next_payment_due tidak valid (pakai format YYYY-MM-DD)")
		}
		m.LeaseNextPaymentDue = &t
	}

	return m, nil
}

/* =========================================================
   REQUEST: Patch (Partial Update, tri-state)
   ========================================================= */

type PatchLeaseRequest struct {
	LeaseTenantID   PatchField[uuid.UUID] `json:"lease_tenant_id"`
	LeaseLandlordID PatchField[uuid.UUID] `json:"lease_landlord_id"`

	LeaseEndDate        PatchField[string] `json:"lease_end_date"`         // "YYYY-MM-DD"
	LeaseNextPaymentDue PatchField[string] `json:"lease_next_payment_due"` // "YYYY-MM-DD"
	LeaseDueDayOfMonth  PatchField[int16]  `json:"lease_due_day_of_month"`

	LeaseMonthlyRentWithoutBills PatchField[float64] `json:"lease_monthly_rent_without_bills"`
	LeaseMonthlyRentWithBills    PatchField[float64] `json:"lease_monthly_rent_with_bills"`
	LeaseBillsIncludedAmount     PatchField[float64] `json:"lease_bills_included_amount"`
	LeaseDepositAmount           PatchField[float64] `json:"lease_deposit_amount"`

	LeaseCurrency PatchField[string] `json:"lease_currency"`
	LeaseStatus   PatchField[string] `json:"lease_status"`
	LeaseNotes    PatchField[string] `json:"lease_notes"`
}

func (p *PatchLeaseRequest) ApplyTo(l *model.LeaseModel) error {
	// Referensi pihak
	if p.LeaseTenantID.Set {
		if p.LeaseTenantID.Null {
			l.LeaseTenantID = nil
		} else {
			l.LeaseTenantID = p.LeaseTenantID.Value
		}
	}
	if p.LeaseLandlordID.Set {
		if p.LeaseLandlordID.Null {
			l.LeaseLandlordID = nil
		} else {
			l.LeaseLandlordID = p.LeaseLandlordID.Value
		}
	}

	// Tanggal
	if p.LeaseEndDate.Set {
		if p.LeaseEndDate.Null {
			l.LeaseEndDate = nil
		} else {
			t, err := parseDateYMD(*p.LeaseEndDate.Value)
			if err != nil {
				return errors.New("lease_end_date tidak valid (pakai format YYYY-MM-DD)")
			}
			l.LeaseEndDate = &t
		}
	}
	if p.LeaseNextPaymentDue.Set {
		if p.LeaseNextPaymentDue.Null {
			l.LeaseNextPaymentDue = nil
		} else {
			t, err := parseDateYMD(*p.LeaseNextPaymentDue.Value)
			if err != nil {
				return errors.New("lease_next_payment_due tidak valid (pakai format YYYY-MM-DD)")
			}
			l.LeaseNextPaymentDue = &t
		}
	}
	if p.LeaseDueDayOfMonth.Set && !p.LeaseDueDayOfMonth.Null {
		l.LeaseDueDayOfMonth = *p.LeaseDueDayOfMonth.Value
	}

	// Nominal
	if p.LeaseMonthlyRentWithoutBills.Set && !p.LeaseMonthlyRentWithoutBills.Null {
		l.LeaseMonthlyRentWithoutBills = *p.LeaseMonthlyRentWithoutBills.Value
	}
	if p.LeaseMonthlyRentWithBills.Set {
		if p.LeaseMonthlyRentWithBills.Null {
			l.LeaseMonthlyRentWithBills = nil
		} else {
			l.LeaseMonthlyRentWithBills = p.LeaseMonthlyRentWithBills.Value
		}
	}
	if p.LeaseBillsIncludedAmount.Set {
		if p.LeaseBillsIncludedAmount.Null {
			l.LeaseBillsIncludedAmount = nil
		} else {
			l.LeaseBillsIncludedAmount = p.LeaseBillsIncludedAmount.Value
		}
	}
	if p.LeaseDepositAmount.Set {
		if p.LeaseDepositAmount.Null {
			l.LeaseDepositAmount = nil
		} else {
			l.LeaseDepositAmount = p.LeaseDepositAmount.Value
		}
	}

	// Lain-lain
	if p.LeaseCurrency.Set && !p.LeaseCurrency.Null {
		l.LeaseCurrency = strings.ToUpper(strings.TrimSpace(*p.LeaseCurrency.Value))
	}
	if p.LeaseStatus.Set && !p.LeaseStatus.Null {
		l.LeaseStatus = model.LeaseStatus(*p.LeaseStatus.Value)
	}
	if p.LeaseNotes.Set {
		if p.LeaseNotes.Null {
			l.LeaseNotes = nil
		} else {
			l.LeaseNotes = p.LeaseNotes.Value
		}
	}

	// Cek ulang konsistensi nominal setelah patch
	return ValidateAmountConsistency(l.LeaseMonthlyRentWithoutBills, l.LeaseMonthlyRentWithBills, l.LeaseBillsIncludedAmount)
}

/* =========================================================
   QUERY: List
   ========================================================= */

type ListLeaseQuery struct {
	Type       *string    `query:"type"` // TENANT | LANDLORD
	PropertyID *uuid.UUID `query:"property_id"`
	TenantID   *uuid.UUID `query:"tenant_id"`
	LandlordID *uuid.UUID `query:"landlord_id"`
	Status     *string    `query:"status"`
	Q          *string    `query:"q"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type LeaseResponse struct {
	LeaseID       uuid.UUID `json:"lease_id"`
	LeaseAgencyID uuid.UUID `json:"lease_agency_id"`
	LeaseType     string    `json:"lease_type"`

	LeasePropertyID uuid.UUID  `json:"lease_property_id"`
	LeaseTenantID   *uuid.UUID `json:"lease_tenant_id,omitempty"`
	LeaseLandlordID *uuid.UUID `json:"lease_landlord_id,omitempty"`

	LeaseStartDate      string  `json:"lease_start_date"`
	LeaseEndDate        *string `json:"lease_end_date,omitempty"`
	LeaseNextPaymentDue *string `json:"lease_next_payment_due,omitempty"`
	LeaseDueDayOfMonth  int16   `json:"lease_due_day_of_month"`

	LeaseMonthlyRentWithoutBills float64  `json:"lease_monthly_rent_without_bills"`
	LeaseMonthlyRentWithBills    *float64 `json:"lease_monthly_rent_with_bills,omitempty"`
	LeaseBillsIncludedAmount     *float64 `json:"lease_bills_included_amount,omitempty"`
	LeaseDepositAmount           *float64 `json:"lease_deposit_amount,omitempty"`

	LeaseCurrency string  `json:"lease_currency"`
	LeaseStatus   string  `json:"lease_status"`
	LeaseNotes    *string `json:"lease_notes,omitempty"`

	LeaseCreatedAt time.Time `json:"lease_created_at"`
	LeaseUpdatedAt time.Time `json:"lease_updated_at"`
}

func dateToYMD(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func FromModel(m model.LeaseModel) LeaseResponse {
	return LeaseResponse{
		LeaseID:                      m.LeaseID,
		LeaseAgencyID:                m.LeaseAgencyID,
		LeaseType:                    string(m.LeaseType),
		LeasePropertyID:              m.LeasePropertyID,
		LeaseTenantID:                m.LeaseTenantID,
		LeaseLandlordID:              m.LeaseLandlordID,
		LeaseStartDate:               m.LeaseStartDate.Format("2006-01-02"),
		LeaseEndDate:                 dateToYMD(m.LeaseEndDate),
		LeaseNextPaymentDue:          dateToYMD(m.LeaseNextPaymentDue),
		LeaseDueDayOfMonth:           m.LeaseDueDayOfMonth,
		LeaseMonthlyRentWithoutBills: m.LeaseMonthlyRentWithoutBills,
		LeaseMonthlyRentWithBills:    m.LeaseMonthlyRentWithBills,
		LeaseBillsIncludedAmount:     m.LeaseBillsIncludedAmount,
		LeaseDepositAmount:           m.LeaseDepositAmount,
		LeaseCurrency:                m.LeaseCurrency,
		LeaseStatus:                  string(m.LeaseStatus),
		LeaseNotes:                   m.LeaseNotes,
		LeaseCreatedAt:               m.LeaseCreatedAt,
		LeaseUpdatedAt:               m.LeaseUpdatedAt,
	}
}

func FromModels(list []model.LeaseModel) []LeaseResponse {
	out := make([]LeaseResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
