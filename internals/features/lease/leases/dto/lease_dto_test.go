// file: internals/features/lease/leases/dto/lease_dto_test.go
package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "propertiku_backend/internals/features/lease/leases/model"
)

func f64(v float64) *float64 { return &v }

func TestValidateAmountConsistency(t *testing.T) {
	// pas persis
	assert.NoError(t, ValidateAmountConsistency(800, f64(950), f64(150)))

	// dalam toleransi pembulatan
	assert.NoError(t, ValidateAmountConsistency(800.004, f64(950), f64(150)))

	// di luar toleransi
	err := ValidateAmountConsistency(800, f64(960), f64(150))
	assert.ErrorIs(t, err, ErrInconsistentAmounts)

	// salah satu nil → tidak dicek
	assert.NoError(t, ValidateAmountConsistency(800, nil, f64(150)))
	assert.NoError(t, ValidateAmountConsistency(800, f64(999), nil))
}

func TestCreateLeaseRequest_ToModel(t *testing.T) {
	tenantID := uuid.New()
	req := CreateLeaseRequest{
		LeaseType:                    "TENANT",
		LeasePropertyID:              uuid.New(),
		LeaseTenantID:                &tenantID,
		LeaseStartDate:               "2026-01-15",
		LeaseMonthlyRentWithoutBills: 800,
		LeaseMonthlyRentWithBills:    f64(950),
		LeaseBillsIncludedAmount:     f64(150),
	}

	agencyID := uuid.New()
	m, err := req.ToModel(agencyID)
	require.NoError(t, err)

	assert.Equal(t, agencyID, m.LeaseAgencyID)
	assert.Equal(t, model.LeaseTypeTenant, m.LeaseType)
	assert.Equal(t, "2026-01-15", m.LeaseStartDate.Format("2006-01-02"))
	assert.Equal(t, int16(model.DefaultDueDayOfMonth), m.LeaseDueDayOfMonth)
	assert.Equal(t, "IDR", m.LeaseCurrency)
	assert.Equal(t, model.LeaseStatusActive, m.LeaseStatus)
}

func TestCreateLeaseRequest_ToModel_InconsistentAmounts(t *testing.T) {
	tenantID := uuid.New()
	req := CreateLeaseRequest{
		LeaseType:                    "TENANT",
		LeasePropertyID:              uuid.New(),
		LeaseTenantID:                &tenantID,
		LeaseStartDate:               "2026-01-15",
		LeaseMonthlyRentWithoutBills: 800,
		LeaseMonthlyRentWithBills:    f64(1000),
		LeaseBillsIncludedAmount:     f64(150),
	}

	_, err := req.ToModel(uuid.New())
	assert.ErrorIs(t, err, ErrInconsistentAmounts)
}

func TestCreateLeaseRequest_ToModel_BadDate(t *testing.T) {
	tenantID := uuid.New()
	req := CreateLeaseRequest{
		LeaseType:                    "TENANT",
		LeasePropertyID:              uuid.New(),
		LeaseTenantID:                &tenantID,
		LeaseStartDate:               "15-01-2026",
		LeaseMonthlyRentWithoutBills: 800,
	}

	_, err := req.ToModel(uuid.New())
	assert.Error(t, err)
}

/* =========================================================
   PatchField tri-state
   ========================================================= */

func TestPatchField_TriState(t *testing.T) {
	var req PatchLeaseRequest

	// field absen vs null vs nilai
	payload := []byte(`{"lease_notes": null, "lease_due_day_of_month": 10}`)
	require.NoError(t, json.Unmarshal(payload, &req))

	assert.True(t, req.LeaseNotes.Set)
	assert.True(t, req.LeaseNotes.Null)

	assert.True(t, req.LeaseDueDayOfMonth.Set)
	assert.False(t, req.LeaseDueDayOfMonth.Null)
	require.NotNil(t, req.LeaseDueDayOfMonth.Value)
	assert.Equal(t, int16(10), *req.LeaseDueDayOfMonth.Value)

	// tidak dikirim → Set=false
	assert.False(t, req.LeaseEndDate.Set)
}

func TestPatchLeaseRequest_ApplyTo(t *testing.T) {
	notes := "lama"
	lease := model.LeaseModel{
		LeaseDueDayOfMonth:           5,
		LeaseMonthlyRentWithoutBills: 800,
		LeaseNotes:                   &notes,
		LeaseCurrency:                "IDR",
		LeaseStatus:                  model.LeaseStatusActive,
	}

	var req PatchLeaseRequest
	payload := []byte(`{
		"lease_notes": null,
		"lease_due_day_of_month": 20,
		"lease_end_date": "2026-12-31",
		"lease_status": "ENDED"
	}`)
	require.NoError(t, json.Unmarshal(payload, &req))
	require.NoError(t, req.ApplyTo(&lease))

	assert.Nil(t, lease.LeaseNotes)
	assert.Equal(t, int16(20), lease.LeaseDueDayOfMonth)
	require.NotNil(t, lease.LeaseEndDate)
	assert.Equal(t, "2026-12-31", lease.LeaseEndDate.Format("2006-01-02"))
	assert.Equal(t, model.LeaseStatusEnded, lease.LeaseStatus)
}

func TestPatchLeaseRequest_ApplyTo_InconsistentAfterPatch(t *testing.T) {
	lease := model.LeaseModel{
		LeaseMonthlyRentWithoutBills: 800,
		LeaseMonthlyRentWithBills:    f64(950),
		LeaseBillsIncludedAmount:     f64(150),
	}

	var req PatchLeaseRequest
	payload := []byte(`{"lease_monthly_rent_with_bills": 2000}`)
	require.NoError(t, json.Unmarshal(payload, &req))

	err := req.ApplyTo(&lease)
	assert.ErrorIs(t, err, ErrInconsistentAmounts)
}
