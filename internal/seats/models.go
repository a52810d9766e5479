package seats

import (
	"time"

	"github.com/google/uuid"
)

// Seat defines a bookable physical location in a stadium. Price is
// always present (schema default 0) so the booking charge never needs
// a null fallback. IsAvailable is advisory display state only: the
// ticket ledger is the authoritative per-event availability record.
type Seat struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StadiumID   uuid.UUID `gorm:"type:uuid;index;not null" json:"stadium_id"`
	Section     string    `gorm:"type:varchar(50);not null" json:"section"`
	RowNumber   string    `gorm:"type:varchar(10);not null" json:"row_number"`
	SeatNumber  string    `gorm:"type:varchar(10);not null" json:"seat_number"`
	SeatType    string    `gorm:"type:varchar(30);default:'Standard'" json:"seat_type"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// Label returns the human-readable seat position used in conflict messages
func (s *Seat) Label() string {
	return "Section " + s.Section + ", Row " + s.RowNumber + ", Seat " + s.SeatNumber
}
