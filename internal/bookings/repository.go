package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"cricverse/internal/seats"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Transactional booking paths. All locking lives here: seat rows
	// are locked before the ticket ledger is queried, in that order,
	// on every path.
	BookSeat(ctx context.Context, seatID, eventID, customerID uuid.UUID) (*Booking, *Ticket, error)
	ValidateAndPriceSeats(ctx context.Context, eventID uuid.UUID, seatIDs []uuid.UUID) (float64, error)
	CaptureOrder(ctx context.Context, order *PendingOrder, paymentMethod, transactionID string) (*Booking, error)

	// Read paths
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetCustomerBookings(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]Booking, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// lockForUpdate attaches the row-lock clause every locked read in this
// package goes through. Centralized so the emitted SQL can be pinned
// by a test.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// BookSeat books a single seat for an event inside one transaction.
// The seat row is locked first, serializing all concurrent attempts on
// the same seat; the locked ledger check then decides the winner. The
// returned error is a *DomainError for contract failures and an
// *InfrastructureError for anything unexpected.
func (r *repository) BookSeat(ctx context.Context, seatID, eventID, customerID uuid.UUID) (*Booking, *Ticket, error) {
	var booking Booking
	var ticket Ticket

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the seat row. Contending requests block here until
		// the holder commits or rolls back.
		var seat seats.Seat
		err := lockForUpdate(tx).
			Where("id = ?", seatID).
			First(&seat).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSeatNotFound
			}
			return NewInfrastructureError("lock seat", err)
		}

		// 2. Ledger check under the same transaction. The seat row
		// flag is advisory only; an active ticket is what actually
		// makes the seat taken for this event.
		var active []Ticket
		err = lockForUpdate(tx).
			Where("event_id = ? AND seat_id = ?", eventID, seatID).
			Where("status IN ?", activeTicketStatuses).
			Find(&active).Error
		if err != nil {
			return NewInfrastructureError("check ticket ledger", err)
		}
		if len(active) > 0 {
			return ErrSeatAlreadyBooked
		}

		// 3. Create the booking. The direct path models an unpaid
		// reservation, so payment status is an explicit Pending.
		booking = Booking{
			CustomerID:    customerID,
			EventID:       eventID,
			TotalAmount:   seat.Price,
			PaymentStatus: PaymentPending,
			BookingDate:   time.Now(),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return NewInfrastructureError("create booking", err)
		}

		// 4. Create the ticket referencing the flushed booking id.
		ticket = Ticket{
			EventID:    eventID,
			SeatID:     seatID,
			CustomerID: customerID,
			BookingID:  booking.ID,
			Status:     TicketBooked,
			AccessGate: accessGateFor(seat.Section),
		}
		if err := tx.Create(&ticket).Error; err != nil {
			return NewInfrastructureError("create ticket", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &booking, &ticket, nil
}

// ValidateAndPriceSeats locks the requested seats, verifies none holds
// an active ticket for the event, and returns the summed price. The
// locks are released when the transaction commits: nothing stays
// reserved, and the capture step re-validates.
func (r *repository) ValidateAndPriceSeats(ctx context.Context, eventID uuid.UUID, seatIDs []uuid.UUID) (float64, error) {
	var total float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, conflicts, err := lockSeatsAndFindConflicts(tx, eventID, seatIDs)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return NewSeatsAlreadyBookedError(conflicts)
		}

		for _, seat := range locked {
			total += seat.Price
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// CaptureOrder commits a staged order: it re-validates the seats under
// locks, then creates the booking, one ticket per seat, and the
// payment row in a single transaction. Payment status is Completed
// directly because the gateway confirmed the payment before this call.
// A duplicate transaction id fails on the payments unique constraint,
// rolling back the whole capture.
func (r *repository) CaptureOrder(ctx context.Context, order *PendingOrder, paymentMethod, transactionID string) (*Booking, error) {
	var booking Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, conflicts, err := lockSeatsAndFindConflicts(tx, order.EventID, order.SeatIDs)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			// Lost the optimistic race between order creation and
			// capture.
			return NewSeatsNoLongerAvailableError(conflicts)
		}

		now := time.Now()
		booking = Booking{
			CustomerID:    order.CustomerID,
			EventID:       order.EventID,
			TotalAmount:   order.TotalAmount,
			PaymentStatus: PaymentCompleted,
			BookingDate:   now,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return NewInfrastructureError("create booking", err)
		}

		sections := make(map[uuid.UUID]string, len(locked))
		for _, seat := range locked {
			sections[seat.ID] = seat.Section
		}

		tickets := make([]Ticket, 0, len(order.SeatIDs))
		for _, seatID := range order.SeatIDs {
			tickets = append(tickets, Ticket{
				EventID:    order.EventID,
				SeatID:     seatID,
				CustomerID: order.CustomerID,
				BookingID:  booking.ID,
				Status:     TicketBooked,
				AccessGate: accessGateFor(sections[seatID]),
			})
		}
		if err := tx.Create(&tickets).Error; err != nil {
			return NewInfrastructureError("create tickets", err)
		}
		booking.Tickets = tickets

		payment := Payment{
			BookingID:     booking.ID,
			Amount:        order.TotalAmount,
			PaymentMethod: paymentMethod,
			TransactionID: transactionID,
			PaymentStatus: PaymentCompleted,
			PaymentDate:   now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return NewInfrastructureError("create payment", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// accessGateFor maps a seat section to the stadium gate printed on the
// ticket: the first letter of the section, Gate A when the section is
// unset.
func accessGateFor(section string) string {
	if section == "" {
		return "Gate A"
	}
	return "Gate " + strings.ToUpper(section[:1])
}

// lockSeatsAndFindConflicts locks the seat rows, verifies every id
// resolved to a row, and returns the seats plus the subset already
// holding an active ticket for the event. Lock order is fixed: seat
// rows first, ledger second.
func lockSeatsAndFindConflicts(tx *gorm.DB, eventID uuid.UUID, seatIDs []uuid.UUID) ([]seats.Seat, []uuid.UUID, error) {
	var locked []seats.Seat
	err := lockForUpdate(tx).
		Where("id IN ?", seatIDs).
		Find(&locked).Error
	if err != nil {
		return nil, nil, NewInfrastructureError("lock seats", err)
	}
	if len(locked) != len(seatIDs) {
		return nil, nil, ErrSeatsNotFound
	}

	var active []Ticket
	err = lockForUpdate(tx).
		Where("event_id = ?", eventID).
		Where("seat_id IN ?", seatIDs).
		Where("status IN ?", activeTicketStatuses).
		Find(&active).Error
	if err != nil {
		return nil, nil, NewInfrastructureError("check ticket ledger", err)
	}

	conflicts := make([]uuid.UUID, 0, len(active))
	for _, t := range active {
		conflicts = append(conflicts, t.SeatID)
	}

	return locked, conflicts, nil
}

// READ PATHS

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Payments").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetCustomerBookings(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	baseQuery := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("customer_id = ?", customerID)

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := baseQuery.
		Preload("Tickets").
		Preload("Payments").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}
