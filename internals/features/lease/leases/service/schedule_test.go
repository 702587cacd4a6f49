// file: internals/features/lease/leases/service/schedule_test.go
package service

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	expenseModel "propertiku_backend/internals/features/finance/expenses/model"
	leaseModel "propertiku_backend/internals/features/lease/leases/model"
	propertyModel "propertiku_backend/internals/features/property/properties/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func f64(v float64) *float64 { return &v }

func tenantLease(start time.Time, end *time.Time) *leaseModel.LeaseModel {
	tenantID := uuid.New()
	return &leaseModel.LeaseModel{
		LeaseID:                      uuid.New(),
		LeaseAgencyID:                uuid.New(),
		LeaseType:                    leaseModel.LeaseTypeTenant,
		LeasePropertyID:              uuid.New(),
		LeaseTenantID:                &tenantID,
		LeaseStartDate:               start,
		LeaseEndDate:                 end,
		LeaseDueDayOfMonth:           5,
		LeaseMonthlyRentWithoutBills: 800,
		LeaseCurrency:                "IDR",
		LeaseStatus:                  leaseModel.LeaseStatusActive,
	}
}

func landlordLease(start time.Time, end *time.Time) *leaseModel.LeaseModel {
	landlordID := uuid.New()
	l := tenantLease(start, end)
	l.LeaseType = leaseModel.LeaseTypeLandlord
	l.LeaseTenantID = nil
	l.LeaseLandlordID = &landlordID
	l.LeaseMonthlyRentWithoutBills = 700
	return l
}

func testProperty() *propertyModel.PropertyModel {
	return &propertyModel.PropertyModel{
		PropertyID:      uuid.New(),
		PropertyLabel:   "Unit A-101",
		PropertyAddress: "Jl. Kebon Jeruk 12",
	}
}

func TestBuildSchedule_TenantMonthlyRange(t *testing.T) {
	end := date(2026, time.March, 20)
	lease := tenantLease(date(2026, time.January, 15), &end)

	payments, expenses, err := BuildSchedule(lease, testProperty(), 0)
	require.NoError(t, err)
	assert.Empty(t, expenses)
	require.Len(t, payments, 3)

	assert.Equal(t, date(2026, time.January, 5), payments[0].PaymentDueDate)
	assert.Equal(t, date(2026, time.February, 5), payments[1].PaymentDueDate)
	assert.Equal(t, date(2026, time.March, 5), payments[2].PaymentDueDate)

	for i, p := range payments {
		assert.Equal(t, lease.LeaseAgencyID, p.PaymentAgencyID)
		assert.Equal(t, lease.LeaseID, p.PaymentLeaseID)
		assert.Equal(t, 800.0, p.PaymentAmount)
		assert.Equal(t, "IDR", p.PaymentCurrency)
		require.NotNil(t, p.PaymentNotes, "payment %d", i)
	}
	assert.Equal(t, "[AUTO] jadwal sewa 2026-01", *payments[0].PaymentNotes)
	assert.Equal(t, "[AUTO] jadwal sewa 2026-02", *payments[1].PaymentNotes)
	assert.Equal(t, "[AUTO] jadwal sewa 2026-03", *payments[2].PaymentNotes)
}

func TestBuildSchedule_SameMonthStartEnd(t *testing.T) {
	end := date(2026, time.January, 31)
	lease := tenantLease(date(2026, time.January, 2), &end)

	payments, _, err := BuildSchedule(lease, testProperty(), 0)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestBuildSchedule_NoEndDateDefaultsTwelveMonths(t *testing.T) {
	lease := tenantLease(date(2026, time.January, 1), nil)

	payments, _, err := BuildSchedule(lease, testProperty(), 0)
	require.NoError(t, err)
	require.Len(t, payments, DefaultMonthsIfNoEnd)

	// bulan harus berurutan tanpa lompatan
	for i := 0; i < len(payments); i++ {
		want := date(2026, time.Month(1+i), 5)
		assert.Equal(t, want, payments[i].PaymentDueDate, "bulan ke-%d", i)
	}
}

func TestBuildSchedule_MonthsParamCapped(t *testing.T) {
	lease := tenantLease(date(2026, time.January, 1), nil)

	payments, _, err := BuildSchedule(lease, testProperty(), 999)
	require.NoError(t, err)
	assert.Len(t, payments, MaxMonthsIfNoEnd)

	payments, _, err = BuildSchedule(lease, testProperty(), 6)
	require.NoError(t, err)
	assert.Len(t, payments, 6)
}

func TestBuildSchedule_DueDayClampedTo28(t *testing.T) {
	end := date(2026, time.March, 31)
	lease := tenantLease(date(2026, time.January, 1), &end)
	lease.LeaseDueDayOfMonth = 31

	payments, _, err := BuildSchedule(lease, testProperty(), 0)
	require.NoError(t, err)
	require.Len(t, payments, 3)

	// Februari 2026 cuma 28 hari; clamp harus bikin semua bulan valid
	assert.Equal(t, date(2026, time.January, 28), payments[0].PaymentDueDate)
	assert.Equal(t, date(2026, time.February, 28), payments[1].PaymentDueDate)
	assert.Equal(t, date(2026, time.March, 28), payments[2].PaymentDueDate)
}

func TestBuildSchedule_CursorFromNextPaymentDue(t *testing.T) {
	end := date(2026, time.March, 31)
	lease := tenantLease(date(2026, time.January, 1), &end)
	next := date(2026, time.January, 31) // hari 31 → clamp 28
	lease.LeaseNextPaymentDue = &next

	payments, _, err := BuildSchedule(lease, testProperty(), 0)
	require.NoError(t, err)
	require.Len(t, payments, 3)

	assert.Equal(t, date(2026, time.January, 28), payments[0].PaymentDueDate)
	assert.Equal(t, date(2026, time.February, 28), payments[1].PaymentDueDate)
	assert.Equal(t, date(2026, time.March, 28), payments[2].PaymentDueDate)
}

func TestBuildSchedule_CursorBehindStartAdvances(t *testing.T) {
	end := date(2026, time.February, 28)
	lease := tenantLease(date(2026, time.January, 1), &end)
	next := date(2025, time.November, 10) // jauh di belakang bulan pertama
	lease.LeaseNextPaymentDue = &next

	payments, _, err := BuildSchedule(lease, testProperty(), 0)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	assert.Equal(t, date(2026, time.January, 10), payments[0].PaymentDueDate)
	assert.Equal(t, date(2026, time.February, 10), payments[1].PaymentDueDate)
}

func TestBuildSchedule_TenantAmountPreference(t *testing.T) {
	end := date(2026, time.January, 31)

	// with_bills menang
	lease := tenantLease(date(2026, time.January, 1), &end)
	lease.LeaseMonthlyRentWithBills = f64(950)
	lease.LeaseBillsIncludedAmount = f64(150)
	payments, _, err := BuildSchedule(lease, testProperty(), 0)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 950.0, payments[0].PaymentAmount)

	// tanpa with_bills: without + bills
	lease = tenantLease(date(2026, time.January, 1), &end)
	lease.LeaseBillsIncludedAmount = f64(150)
	payments, _, err = BuildSchedule(lease, testProperty(), 0)
	require.NoError(t, err)
	assert.Equal(t, 950.0, payments[0].PaymentAmount)

	// keduanya kosong: without saja
	lease = tenantLease(date(2026, time.January, 1), &end)
	payments, _, err = BuildSchedule(lease, testProperty(), 0)
	require.NoError(t, err)
	assert.Equal(t, 800.0, payments[0].PaymentAmount)
}

func TestBuildSchedule_LandlordWritesExpenses(t *testing.T) {
	end := date(2026, time.March, 31)
	lease := landlordLease(date(2026, time.January, 1), &end)

	payments, expenses, err := BuildSchedule(lease, testProperty(), 0)
	require.NoError(t, err)
	assert.Empty(t, payments)
	require.Len(t, expenses, 3)

	for _, e := range expenses {
		assert.Equal(t, expenseModel.ExpenseTypeRentToLandlord, e.ExpenseType)
		assert.Equal(t, expenseModel.ExpenseFrequencyMonthly, e.ExpenseFrequency)
		assert.Equal(t, expenseModel.ExpenseStatusPlanned, e.ExpenseStatus)
		assert.Equal(t, 700.0, e.ExpenseAmount)
		require.NotNil(t, e.ExpenseLeaseID)
		assert.Equal(t, lease.LeaseID, *e.ExpenseLeaseID)
	}
	assert.Equal(t, "2026-01", expenses[0].ExpenseCostMonth)
	assert.Equal(t, "2026-02", expenses[1].ExpenseCostMonth)
	assert.Equal(t, "2026-03", expenses[2].ExpenseCostMonth)
}

func TestBuildSchedule_Preconditions(t *testing.T) {
	end := date(2026, time.March, 31)
	prop := testProperty()

	t.Run("start date kosong", func(t *testing.T) {
		lease := tenantLease(time.Time{}, &end)
		p, e, err := BuildSchedule(lease, prop, 0)
		assert.ErrorIs(t, err, ErrInvalidStartDate)
		assert.Empty(t, p)
		assert.Empty(t, e)
	})

	t.Run("nominal negatif", func(t *testing.T) {
		lease := tenantLease(date(2026, time.January, 1), &end)
		lease.LeaseMonthlyRentWithoutBills = -1
		_, _, err := BuildSchedule(lease, prop, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("nominal NaN", func(t *testing.T) {
		lease := tenantLease(date(2026, time.January, 1), &end)
		lease.LeaseMonthlyRentWithoutBills = math.NaN()
		_, _, err := BuildSchedule(lease, prop, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("tenant lease tanpa tenant", func(t *testing.T) {
		lease := tenantLease(date(2026, time.January, 1), &end)
		lease.LeaseTenantID = nil
		p, e, err := BuildSchedule(lease, prop, 0)
		assert.ErrorIs(t, err, ErrMissingTenant)
		assert.Empty(t, p)
		assert.Empty(t, e)
	})

	t.Run("landlord lease tanpa landlord", func(t *testing.T) {
		lease := landlordLease(date(2026, time.January, 1), &end)
		lease.LeaseLandlordID = nil
		p, e, err := BuildSchedule(lease, prop, 0)
		assert.ErrorIs(t, err, ErrMissingLandlord)
		assert.Empty(t, p)
		assert.Empty(t, e)
	})
}
