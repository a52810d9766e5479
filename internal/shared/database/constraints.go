package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database constraints the booking transaction
// relies on but AutoMigrate cannot express.
func MigrateConstraints(db *gorm.DB) error {
	// The ledger check in the booking transaction filters on
	// (event_id, seat_id, status); this index keeps the locked lookup
	// from scanning the whole ticket table.
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_event_seat_status
		ON tickets (event_id, seat_id, status);
	`).Error
	if err != nil {
		return err
	}

	// Backstop for the ledger invariant: at most one active ticket per
	// seat per event even if a future code path skips the row locks.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_ticket_per_event_seat
		ON tickets (event_id, seat_id)
		WHERE status IN ('Booked', 'Used');
	`).Error
	if err != nil {
		return err
	}

	return nil
}
