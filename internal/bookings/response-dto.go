package bookings

import (
	"github.com/google/uuid"
)

// BookingResult is the structured outcome of a booking attempt. The
// service never returns a raw error for contract failures: callers
// always receive one of these.
type BookingResult struct {
	Success         bool        `json:"success"`
	Message         string      `json:"message"`
	ErrorCode       string      `json:"error_code,omitempty"`
	BookingID       *uuid.UUID  `json:"booking_id,omitempty"`
	TicketID        *uuid.UUID  `json:"ticket_id,omitempty"`
	TicketIDs       []uuid.UUID `json:"ticket_ids,omitempty"`
	TotalAmount     float64     `json:"total_amount,omitempty"`
	ConflictSeatIDs []uuid.UUID `json:"conflict_seat_ids,omitempty"`
}

// OrderResult is the structured outcome of a create-order attempt
type OrderResult struct {
	Success         bool        `json:"success"`
	Message         string      `json:"message"`
	ErrorCode       string      `json:"error_code,omitempty"`
	OrderID         string      `json:"order_id,omitempty"`
	Amount          float64     `json:"amount,omitempty"`
	ConflictSeatIDs []uuid.UUID `json:"conflict_seat_ids,omitempty"`
}

// BookingListResponse wraps a paginated booking history page
type BookingListResponse struct {
	Bookings   []Booking `json:"bookings"`
	TotalCount int64     `json:"total_count"`
	Limit      int       `json:"limit"`
	Offset     int       `json:"offset"`
}
