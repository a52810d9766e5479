package bookings

import (
	"testing"

	"cricverse/internal/seats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

// The whole concurrency contract hangs on the locked reads actually
// emitting FOR UPDATE. Pin the generated SQL so the locking clause
// cannot silently regress into a plain SELECT.
func TestLockForUpdate_SeatReadEmitsRowLock(t *testing.T) {
	db := newDryRunDB(t)

	var locked []seats.Seat
	stmt := lockForUpdate(db).
		Where("id IN ?", []uuid.UUID{uuid.New()}).
		Find(&locked).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Contains(t, sql, "WHERE id IN")
}

func TestLockForUpdate_LedgerReadEmitsRowLock(t *testing.T) {
	db := newDryRunDB(t)

	var active []Ticket
	stmt := lockForUpdate(db).
		Where("event_id = ? AND seat_id = ?", uuid.New(), uuid.New()).
		Where("status IN ?", activeTicketStatuses).
		Find(&active).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Contains(t, sql, "event_id")
}

func TestAccessGateFromSection(t *testing.T) {
	cases := []struct {
		section string
		want    string
	}{
		{"Premium", "Gate P"},
		{"members", "Gate M"},
		{"General Admission", "Gate G"},
		{"", "Gate A"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, accessGateFor(tc.section), "section %q", tc.section)
	}
}
