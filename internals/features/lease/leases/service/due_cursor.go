// file: internals/features/lease/leases/service/due_cursor.go
package service

import (
	"fmt"
	"time"
)

/* =========================================================
   Kalender util (UTC, tanpa drift timezone)
   ========================================================= */

// clampDueDay membatasi hari jatuh tempo ke [1,28] supaya setiap bulan
// (termasuk Februari) punya tanggal tersebut.
func clampDueDay(d int) int {
	if d < 1 {
		return 1
	}
	if d > 28 {
		return 28
	}
	return d
}

// monthStart = tanggal 1 di bulan t (UTC).
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// addMonths menambah n bulan kalender dengan hari tetap.
// Hari pemanggil selalu sudah di-clamp ≤28, jadi tidak ada overflow
// ke bulan berikutnya.
func addMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), time.Month(int(t.Month())+n), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// periodKey membangun kunci periode "YYYY-MM" dari sebuah bulan.
func periodKey(m time.Time) string {
	return fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month()))
}

/* =========================================================
   Due-date cursor sebagai fold murni
   =========================================================

   Cursor menggantikan pola lama "variabel tanggal global yang
   di-reassign dalam while-loop": dueFor menerima state cursor +
   bulan target, dan mengembalikan pasangan (dueDate, cursor
   berikutnya) secara eksplisit. Tidak ada mutasi bersama, urutan
   iterasi tidak ambigu, dan logika cursor bisa dites sendiri.
*/

type dueCursor struct {
	next time.Time
	set  bool
}

// seedDueCursor membuat cursor awal dari next_payment_due (boleh nil).
// Hari di-clamp ≤28 sejak awal.
func seedDueCursor(nextPaymentDue *time.Time) dueCursor {
	if nextPaymentDue == nil {
		return dueCursor{}
	}
	d := *nextPaymentDue
	return dueCursor{
		next: time.Date(d.Year(), d.Month(), clampDueDay(d.Day()), 0, 0, 0, 0, time.UTC),
		set:  true,
	}
}

// dueFor menghitung tanggal jatuh tempo untuk bulan `month` (tanggal 1,
// UTC) dan mengembalikan cursor untuk iterasi berikutnya.
//
//   - Cursor set: maju per bulan utuh (hari tetap) sampai bulannya sama
//     dengan `month`; kalau pas, itu jatuh temponya dan cursor bergeser
//     satu bulan lagi. Kalau cursor sudah melewati `month` (harusnya
//     tidak terjadi karena maju monoton), fallback ke dueDay.
//   - Cursor unset: jatuh tempo = tanggal `dueDay` (clamp ≤28) di bulan itu.
func (cur dueCursor) dueFor(month time.Time, dueDay int) (time.Time, dueCursor) {
	if !cur.set {
		return month.AddDate(0, 0, clampDueDay(dueDay)-1), cur
	}

	c := cur.next
	for c.Before(month) && !sameMonth(c, month) {
		c = addMonths(c, 1)
	}
	if sameMonth(c, month) {
		return c, dueCursor{next: addMonths(c, 1), set: true}
	}
	// cursor sudah lewat dari bulan target → fallback
	return month.AddDate(0, 0, clampDueDay(dueDay)-1), dueCursor{next: c, set: true}
}
