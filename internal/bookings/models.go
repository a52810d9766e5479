package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking groups one or more tickets under a single customer
// transaction with a total charge
type Booking struct {
	ID            uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CustomerID    uuid.UUID     `gorm:"type:uuid;index;not null" json:"customer_id"`
	EventID       uuid.UUID     `gorm:"type:uuid;index;not null" json:"event_id"`
	TotalAmount   float64       `gorm:"not null" json:"total_amount"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);check:payment_status IN ('Pending', 'Completed', 'Failed', 'Cancelled');default:'Pending'" json:"payment_status"`
	BookingDate   time.Time     `gorm:"not null" json:"booking_date"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Relationships
	Tickets  []Ticket  `json:"tickets,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:RESTRICT;"`
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:RESTRICT;"`
}

// Ticket binds one seat to one event and one customer within one
// booking. It is the authoritative per-event availability record: for
// any (event_id, seat_id) at most one ticket may hold an active status,
// enforced by the booking transaction's locked ledger check and backed
// by a partial unique index.
type Ticket struct {
	ID         uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID    uuid.UUID    `gorm:"type:uuid;not null" json:"event_id"`
	SeatID     uuid.UUID    `gorm:"type:uuid;not null" json:"seat_id"`
	CustomerID uuid.UUID    `gorm:"type:uuid;index;not null" json:"customer_id"`
	BookingID  uuid.UUID    `gorm:"type:uuid;index;not null" json:"booking_id"`
	Status     TicketStatus `gorm:"type:varchar(20);check:status IN ('Booked', 'Used', 'Cancelled', 'Transferred');default:'Booked'" json:"status"`
	AccessGate string       `gorm:"type:varchar(20)" json:"access_gate,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`

	// Relationships
	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:RESTRICT;"`
}

// Payment records funds captured against a booking. TransactionID
// carries the external gateway identifier and is unique: a duplicate
// capture with the same gateway id fails at the database rather than
// double-booking.
type Payment struct {
	ID            uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID     uuid.UUID     `gorm:"type:uuid;index;not null" json:"booking_id"`
	Amount        float64       `gorm:"not null" json:"amount"`
	PaymentMethod string        `gorm:"type:varchar(50)" json:"payment_method"`
	TransactionID string        `gorm:"unique;not null" json:"transaction_id"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);check:payment_status IN ('Pending', 'Completed', 'Failed', 'Cancelled');default:'Completed'" json:"payment_status"`
	PaymentDate   time.Time     `gorm:"not null" json:"payment_date"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Relationships
	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:RESTRICT;"`
}

// PendingOrder stages a provisional seat selection between order
// creation and payment capture. It lives only in Redis under a TTL,
// never in Postgres: nothing is reserved while it exists, and the
// capture step re-validates the seats under locks.
type PendingOrder struct {
	OrderID     string      `json:"order_id"`
	EventID     uuid.UUID   `json:"event_id"`
	SeatIDs     []uuid.UUID `json:"seat_ids"`
	TotalAmount float64     `json:"total_amount"`
	CustomerID  uuid.UUID   `json:"customer_id"`
	CreatedAt   time.Time   `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}

// TableName sets the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// Helper methods for booking state

func (b *Booking) IsPending() bool {
	return b.PaymentStatus == PaymentPending
}

func (b *Booking) IsCompleted() bool {
	return b.PaymentStatus == PaymentCompleted
}

// IsActive reports whether the ticket currently blocks its seat for
// its event
func (t *Ticket) IsActive() bool {
	return t.Status == TicketBooked || t.Status == TicketUsed
}
