// file: internals/features/lease/leases/service/due_cursor_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClampDueDay(t *testing.T) {
	assert.Equal(t, 1, clampDueDay(0))
	assert.Equal(t, 1, clampDueDay(-3))
	assert.Equal(t, 5, clampDueDay(5))
	assert.Equal(t, 28, clampDueDay(28))
	assert.Equal(t, 28, clampDueDay(31))
}

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "2026-01", periodKey(date(2026, time.January, 1)))
	assert.Equal(t, "2026-12", periodKey(date(2026, time.December, 1)))
}

func TestSeedDueCursor_ClampsDay(t *testing.T) {
	next := date(2026, time.January, 31)
	cur := seedDueCursor(&next)
	assert.True(t, cur.set)
	assert.Equal(t, date(2026, time.January, 28), cur.next)

	assert.False(t, seedDueCursor(nil).set)
}

// Fold: dueFor mengembalikan pasangan (due, cursor berikutnya) tanpa
// menyentuh cursor lama.
func TestDueFor_PureFold(t *testing.T) {
	next := date(2026, time.January, 15)
	cur := seedDueCursor(&next)

	jan := date(2026, time.January, 1)
	due1, cur2 := cur.dueFor(jan, 5)
	assert.Equal(t, date(2026, time.January, 15), due1)
	assert.Equal(t, date(2026, time.February, 15), cur2.next)

	// cursor lama tidak berubah: panggilan ulang memberi hasil sama
	due1b, _ := cur.dueFor(jan, 5)
	assert.Equal(t, due1, due1b)

	feb := date(2026, time.February, 1)
	due2, cur3 := cur2.dueFor(feb, 5)
	assert.Equal(t, date(2026, time.February, 15), due2)
	assert.Equal(t, date(2026, time.March, 15), cur3.next)
}

func TestDueFor_UnsetUsesDueDay(t *testing.T) {
	var cur dueCursor

	due, next := cur.dueFor(date(2026, time.February, 1), 31)
	assert.Equal(t, date(2026, time.February, 28), due)
	assert.False(t, next.set)
}

func TestDueFor_CursorAheadFallsBackToDueDay(t *testing.T) {
	// cursor sudah di bulan setelah target
	ahead := date(2026, time.March, 10)
	cur := seedDueCursor(&ahead)

	due, next := cur.dueFor(date(2026, time.January, 1), 5)
	assert.Equal(t, date(2026, time.January, 5), due)
	assert.True(t, next.set)
	assert.Equal(t, ahead, next.next)
}
