package bookings

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error codes surfaced to the HTTP layer for status mapping
const (
	CodeSeatNotFound           = "SEAT_NOT_FOUND"
	CodeSeatsNotFound          = "SEATS_NOT_FOUND"
	CodeSeatAlreadyBooked      = "SEAT_ALREADY_BOOKED"
	CodeSeatsAlreadyBooked     = "SEATS_ALREADY_BOOKED"
	CodeSeatsNoLongerAvailable = "SEATS_NO_LONGER_AVAILABLE"
	CodeNoPendingOrder         = "NO_PENDING_ORDER"
	CodeOrderIDMismatch        = "ORDER_ID_MISMATCH"
	CodeCustomerIDMismatch     = "CUSTOMER_ID_MISMATCH"
	CodeInfrastructureError    = "INFRASTRUCTURE_ERROR"
)

// DomainError is a booking failure that is part of the contract: it is
// always converted into a structured result at the service boundary
// and never retried.
type DomainError struct {
	Code    string
	Message string

	// ConflictSeatIDs names the seats that already hold active
	// tickets, for client display. Set only on conflict codes.
	ConflictSeatIDs []uuid.UUID
}

func (e *DomainError) Error() string {
	return e.Message
}

var (
	ErrSeatNotFound = &DomainError{
		Code:    CodeSeatNotFound,
		Message: "Seat not found",
	}
	ErrSeatsNotFound = &DomainError{
		Code:    CodeSeatsNotFound,
		Message: "One or more seats not found",
	}
	ErrSeatAlreadyBooked = &DomainError{
		Code:    CodeSeatAlreadyBooked,
		Message: "Seat is already booked for this event",
	}
	ErrNoPendingOrder = &DomainError{
		Code:    CodeNoPendingOrder,
		Message: "No pending booking found in session.",
	}
	ErrOrderIDMismatch = &DomainError{
		Code:    CodeOrderIDMismatch,
		Message: "Order verification failed.",
	}
	ErrCustomerIDMismatch = &DomainError{
		Code:    CodeCustomerIDMismatch,
		Message: "Order does not belong to this customer.",
	}
)

// NewSeatsAlreadyBookedError reports a conflict found while creating a
// payment order, naming the seats that are already taken.
func NewSeatsAlreadyBookedError(seatIDs []uuid.UUID) *DomainError {
	return &DomainError{
		Code:            CodeSeatsAlreadyBooked,
		Message:         fmt.Sprintf("%d of the selected seats are already booked for this event", len(seatIDs)),
		ConflictSeatIDs: seatIDs,
	}
}

// NewSeatsNoLongerAvailableError reports that the optimistic gap
// between order creation and capture was lost to another booking.
func NewSeatsNoLongerAvailableError(seatIDs []uuid.UUID) *DomainError {
	return &DomainError{
		Code:            CodeSeatsNoLongerAvailable,
		Message:         "Seats became unavailable during payment.",
		ConflictSeatIDs: seatIDs,
	}
}

// InfrastructureError wraps an unexpected database or transport
// failure. It is the only error class a retry wrapper may act on.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError wraps err with the failing operation name
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// AsDomainError extracts a DomainError from err, if it is one
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsInfrastructureError reports whether err is a transient
// infrastructure failure rather than a domain outcome. Only these are
// eligible for retry.
func IsInfrastructureError(err error) bool {
	var ie *InfrastructureError
	return errors.As(err, &ie)
}
