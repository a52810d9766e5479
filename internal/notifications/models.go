package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BookingNotification is the payload published for a committed
// booking. Downstream consumers (email/SMS workers) deliver it; this
// service only produces it, after the booking transaction commits.
type BookingNotification struct {
	BookingID     uuid.UUID `json:"booking_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	EventID       uuid.UUID `json:"event_id"`
	EventName     string    `json:"event_name"`
	StadiumName   string    `json:"stadium_name"`
	SeatLabels    []string  `json:"seat_labels"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentStatus string    `json:"payment_status"`
	BookedAt      time.Time `json:"booked_at"`
}

// ToJSON serializes the notification for the wire
func (n *BookingNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// PartitionKey routes all of a customer's notifications to the same
// partition so delivery order per customer is preserved.
func (n *BookingNotification) PartitionKey() string {
	return n.CustomerID.String()
}
