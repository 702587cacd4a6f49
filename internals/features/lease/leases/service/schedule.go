// file: internals/features/lease/leases/service/schedule.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	expenseModel "propertiku_backend/internals/features/finance/expenses/model"
	paymentModel "propertiku_backend/internals/features/finance/payments/model"
	leaseModel "propertiku_backend/internals/features/lease/leases/model"
	propertyModel "propertiku_backend/internals/features/property/properties/model"
)

/* =========================================================
   Error taksonomi (dipetakan controller ke status HTTP)
   ========================================================= */

var (
	ErrLeaseNotFound    = errors.New("lease tidak ditemukan")
	ErrPropertyNotFound = errors.New("property tidak ditemukan")
	ErrInvalidStartDate = errors.New("tanggal mulai lease tidak valid")
	ErrInvalidAmount    = errors.New("nominal sewa tidak valid")
	ErrMissingTenant    = errors.New("lease tipe TENANT wajib punya tenant_id")
	ErrMissingLandlord  = errors.New("lease tipe LANDLORD wajib punya landlord_id")
)

// DefaultMonthsIfNoEnd: panjang schedule bila lease tanpa end_date.
const DefaultMonthsIfNoEnd = 12

// MaxMonthsIfNoEnd: guard supaya query ?months= tidak meledakkan batch.
const MaxMonthsIfNoEnd = 60

/* =========================================================
   ScheduleService
   ========================================================= */

type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

// GenerateSchedule membuat satu record tagihan per bulan kalender untuk
// sebuah lease, lalu menulis semuanya dalam SATU transaksi (all-or-nothing):
//   - lease TENANT   → rows di payments
//   - lease LANDLORD → rows di expenses
//
// Tidak ada guard idempotensi: memanggil dua kali untuk lease yang sama
// menduplikasi bulan-bulan yang sudah ada. Period key "YYYY-MM" ikut
// tersimpan di tiap record sehingga dedup bisa ditambahkan belakangan.
func (s *ScheduleService) GenerateSchedule(ctx context.Context, agencyID, leaseID uuid.UUID, monthsIfNoEnd int) (int, error) {
	var lease leaseModel.LeaseModel
	if err := s.DB.WithContext(ctx).
		Where("lease_id = ? AND lease_agency_id = ?", leaseID, agencyID).
		First(&lease).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrLeaseNotFound
		}
		return 0, err
	}

	var prop propertyModel.PropertyModel
	if err := s.DB.WithContext(ctx).
		Where("property_id = ? AND property_agency_id = ?", lease.LeasePropertyID, agencyID).
		First(&prop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPropertyNotFound
		}
		return 0, err
	}

	payments, expenses, err := BuildSchedule(&lease, &prop, monthsIfNoEnd)
	if err != nil {
		return 0, err
	}

	// Commit batch dalam satu transaksi: gagal di tengah = tidak ada row tersimpan.
	if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(payments) > 0 {
			if err := tx.Create(&payments).Error; err != nil {
				return err
			}
		}
		if len(expenses) > 0 {
			if err := tx.Create(&expenses).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}

	return len(payments) + len(expenses), nil
}

/* =========================================================
   BuildSchedule: fungsi murni (tanpa I/O) → gampang dites
   ========================================================= */

// BuildSchedule menghitung seluruh record schedule dari state lease +
// property. Deterministik; tidak menyentuh DB.
func BuildSchedule(lease *leaseModel.LeaseModel, prop *propertyModel.PropertyModel, monthsIfNoEnd int) ([]paymentModel.PaymentModel, []expenseModel.ExpenseModel, error) {
	// --- Prasyarat (semua dicek SEBELUM menghitung apa pun) ---
	if lease.LeaseStartDate.IsZero() {
		return nil, nil, ErrInvalidStartDate
	}
	base := lease.LeaseMonthlyRentWithoutBills
	if math.IsNaN(base) || math.IsInf(base, 0) || base < 0 {
		return nil, nil, ErrInvalidAmount
	}
	switch lease.LeaseType {
	case leaseModel.LeaseTypeTenant:
		if lease.LeaseTenantID == nil || *lease.LeaseTenantID == uuid.Nil {
			return nil, nil, ErrMissingTenant
		}
	case leaseModel.LeaseTypeLandlord:
		if lease.LeaseLandlordID == nil || *lease.LeaseLandlordID == uuid.Nil {
			return nil, nil, ErrMissingLandlord
		}
	default:
		return nil, nil, fmt.Errorf("lease_type tidak dikenal: %q", lease.LeaseType)
	}

	if monthsIfNoEnd <= 0 {
		monthsIfNoEnd = DefaultMonthsIfNoEnd
	}
	if monthsIfNoEnd > MaxMonthsIfNoEnd {
		monthsIfNoEnd = MaxMonthsIfNoEnd
	}

	// --- Rentang bulan (inklusif): start & end di bulan yang sama = 1 record ---
	startMonth := monthStart(lease.LeaseStartDate.UTC())
	var maxEnd time.Time
	if lease.LeaseEndDate != nil {
		maxEnd = monthStart(lease.LeaseEndDate.UTC())
	} else {
		maxEnd = addMonths(startMonth, monthsIfNoEnd-1)
	}

	cur := seedDueCursor(lease.LeaseNextPaymentDue)
	dueDay := int(lease.LeaseDueDayOfMonth)
	if dueDay == 0 {
		dueDay = leaseModel.DefaultDueDayOfMonth
	}

	var (
		payments []paymentModel.PaymentModel
		expenses []expenseModel.ExpenseModel
	)

	for m := startMonth; !m.After(maxEnd); m = addMonths(m, 1) {
		var due time.Time
		due, cur = cur.dueFor(m, dueDay)

		period := periodKey(m)
		notes := "[AUTO] jadwal sewa " + period

		switch lease.LeaseType {
		case leaseModel.LeaseTypeTenant:
			payments = append(payments, paymentModel.PaymentModel{
				PaymentAgencyID:   lease.LeaseAgencyID,
				PaymentLeaseID:    lease.LeaseID,
				PaymentTenantID:   *lease.LeaseTenantID,
				PaymentPropertyID: lease.LeasePropertyID,
				PaymentBuildingID: prop.PropertyBuildingID,
				PaymentDueDate:    due,
				PaymentAmount:     tenantMonthlyAmount(lease),
				PaymentCurrency:   lease.LeaseCurrency,
				PaymentKind:       paymentModel.PaymentKindRent,
				PaymentStatus:     paymentModel.PaymentStatusPlanned,
				PaymentNotes:      &notes,
			})
		case leaseModel.LeaseTypeLandlord:
			expenses = append(expenses, expenseModel.ExpenseModel{
				ExpenseAgencyID:       lease.LeaseAgencyID,
				ExpenseLeaseID:        &lease.LeaseID,
				ExpensePropertyID:     lease.LeasePropertyID,
				ExpenseLandlordID:     lease.LeaseLandlordID,
				ExpenseBuildingID:     prop.PropertyBuildingID,
				ExpenseCostDate:       due,
				ExpenseCostMonth:      period,
				ExpenseAmount:         base,
				ExpenseCurrency:       lease.LeaseCurrency,
				ExpenseType:           expenseModel.ExpenseTypeRentToLandlord,
				ExpenseFrequency:      expenseModel.ExpenseFrequencyMonthly,
				ExpenseScope:          expenseModel.ExpenseScopeUnit,
				ExpenseAllocationMode: expenseModel.ExpenseAllocationNone,
				ExpenseStatus:         expenseModel.ExpenseStatusPlanned,
				ExpenseNotes:          &notes,
			})
		}
	}

	return payments, expenses, nil
}

// tenantMonthlyAmount: penyewa ditagih nominal GROSS.
// Preferensi: with_bills → without+bills → without.
func tenantMonthlyAmount(lease *leaseModel.LeaseModel) float64 {
	if lease.LeaseMonthlyRentWithBills != nil {
		return *lease.LeaseMonthlyRentWithBills
	}
	if lease.LeaseBillsIncludedAmount != nil {
		return lease.LeaseMonthlyRentWithoutBills + *lease.LeaseBillsIncludedAmount
	}
	return lease.LeaseMonthlyRentWithoutBills
}
