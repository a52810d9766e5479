package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cricverse/internal/customers"
	"cricverse/internal/events"
	"cricverse/internal/notifications"
	"cricverse/internal/realtime"
	"cricverse/internal/seats"
	"cricverse/pkg/logger"
	"cricverse/pkg/retry"

	"github.com/google/uuid"
)

// Service is the booking orchestrator. Every operation returns a
// structured result; domain failures never surface as errors to the
// transport layer.
type Service interface {
	// Direct path: lock, validate, commit booking+ticket in one
	// transaction.
	BookSeat(ctx context.Context, seatID, eventID, customerID uuid.UUID) *BookingResult

	// Two-phase path: stage an order, let the caller pay externally,
	// then re-validate and commit at capture.
	CreatePaymentOrder(ctx context.Context, customerID, eventID uuid.UUID, seatIDs []uuid.UUID) *OrderResult
	CapturePayment(ctx context.Context, customerID uuid.UUID, orderID, paymentMethod, transactionID string) *BookingResult

	// Read paths
	GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetCustomerBookings(ctx context.Context, customerID uuid.UUID, limit, offset int) (*BookingListResponse, error)
}

type service struct {
	repo        Repository
	pending     PendingOrderStore
	seatRepo    seats.Repository
	eventReader events.Reader
	custReader  customers.Reader
	producer    notifications.Producer
	broadcaster realtime.Broadcaster
	log         *logger.Logger
}

// NewService creates the booking orchestrator. producer and
// broadcaster may be nil when the corresponding infrastructure is not
// configured; dispatch is skipped for nil collaborators.
func NewService(
	repo Repository,
	pending PendingOrderStore,
	seatRepo seats.Repository,
	eventReader events.Reader,
	custReader customers.Reader,
	producer notifications.Producer,
	broadcaster realtime.Broadcaster,
	log *logger.Logger,
) Service {
	return &service{
		repo:        repo,
		pending:     pending,
		seatRepo:    seatRepo,
		eventReader: eventReader,
		custReader:  custReader,
		producer:    producer,
		broadcaster: broadcaster,
		log:         log,
	}
}

// dispatchTimeout bounds the post-commit notification work, which runs
// detached from the request context.
const dispatchTimeout = 10 * time.Second

// BookSeat books a single seat for an event. Concurrency is resolved
// entirely by the repository's row locks: for N concurrent calls on
// the same seat and event, exactly one returns success.
func (s *service) BookSeat(ctx context.Context, seatID, eventID, customerID uuid.UUID) *BookingResult {
	booking, ticket, err := s.repo.BookSeat(ctx, seatID, eventID, customerID)
	if err != nil {
		if de, ok := AsDomainError(err); ok {
			if de.Code == CodeSeatAlreadyBooked {
				s.log.LogBookingConflict(ctx, eventID.String(), []string{seatID.String()})
			}
			return bookingFailure(de)
		}
		s.log.WithError(err).ErrorContext(ctx, "Direct booking failed")
		return infrastructureBookingFailure()
	}

	s.log.LogSeatBooked(ctx, booking.ID.String(), ticket.ID.String(),
		seatID.String(), eventID.String(), customerID.String())

	// The booking is durable; anything from here on is best-effort.
	go s.dispatchBookingCreated(booking, []uuid.UUID{seatID})

	return &BookingResult{
		Success:     true,
		Message:     "Seat booked successfully",
		BookingID:   &booking.ID,
		TicketID:    &ticket.ID,
		TotalAmount: booking.TotalAmount,
	}
}

// CreatePaymentOrder validates and prices a seat selection, then
// stages it for external payment. The seat locks are released when
// validation commits: nothing is reserved until capture, and capture
// re-validates.
func (s *service) CreatePaymentOrder(ctx context.Context, customerID, eventID uuid.UUID, seatIDs []uuid.UUID) *OrderResult {
	total, err := s.repo.ValidateAndPriceSeats(ctx, eventID, seatIDs)
	if err != nil {
		if de, ok := AsDomainError(err); ok {
			if de.Code == CodeSeatsAlreadyBooked {
				s.log.LogBookingConflict(ctx, eventID.String(), seatIDStrings(de.ConflictSeatIDs))
			}
			return orderFailure(de)
		}
		s.log.WithError(err).ErrorContext(ctx, "Order validation failed")
		return &OrderResult{
			Success:   false,
			Message:   "Unable to create payment order. Please try again.",
			ErrorCode: CodeInfrastructureError,
		}
	}

	order := &PendingOrder{
		OrderID:     generateOrderID(),
		EventID:     eventID,
		SeatIDs:     seatIDs,
		TotalAmount: total,
		CustomerID:  customerID,
		CreatedAt:   time.Now(),
	}

	if err := s.pending.Stage(ctx, order); err != nil {
		s.log.WithError(err).ErrorContext(ctx, "Failed to stage pending order")
		return &OrderResult{
			Success:   false,
			Message:   "Unable to create payment order. Please try again.",
			ErrorCode: CodeInfrastructureError,
		}
	}

	s.log.LogOrderStaged(ctx, order.OrderID, eventID.String(), customerID.String(), total, len(seatIDs))

	return &OrderResult{
		Success: true,
		Message: "Payment order created",
		OrderID: order.OrderID,
		Amount:  total,
	}
}

// CapturePayment commits a staged order after the gateway confirmed
// payment. The staged order is cleared only on success; a failed
// capture leaves it in place so the client can retry within the TTL.
func (s *service) CapturePayment(ctx context.Context, customerID uuid.UUID, orderID, paymentMethod, transactionID string) *BookingResult {
	order, err := s.pending.Get(ctx, orderID)
	if err != nil {
		if de, ok := AsDomainError(err); ok {
			return bookingFailure(de)
		}
		s.log.WithError(err).ErrorContext(ctx, "Pending order lookup failed")
		return infrastructureBookingFailure()
	}

	// Both checks guard against a staged order being replayed for a
	// different session or account. Nothing is mutated on mismatch.
	if order.OrderID != orderID {
		s.log.LogSecurityViolation(ctx, orderID, customerID.String(), "order id mismatch")
		return bookingFailure(ErrOrderIDMismatch)
	}
	if order.CustomerID != customerID {
		s.log.LogSecurityViolation(ctx, orderID, customerID.String(), "customer id mismatch")
		return bookingFailure(ErrCustomerIDMismatch)
	}

	booking, err := s.repo.CaptureOrder(ctx, order, paymentMethod, transactionID)
	if err != nil {
		if de, ok := AsDomainError(err); ok {
			if de.Code == CodeSeatsNoLongerAvailable {
				s.log.LogBookingConflict(ctx, order.EventID.String(), seatIDStrings(de.ConflictSeatIDs))
			}
			return bookingFailure(de)
		}
		s.log.WithError(err).ErrorContext(ctx, "Payment capture failed")
		return infrastructureBookingFailure()
	}

	// Clear the staged order now that the capture is durable. A
	// failed delete only means the entry ages out via its TTL.
	if err := s.pending.Clear(ctx, orderID); err != nil {
		s.log.WithError(err).WarnContext(ctx, "Failed to clear captured order")
	}

	s.log.LogPaymentCaptured(ctx, booking.ID.String(), orderID, transactionID, booking.TotalAmount)

	go s.dispatchBookingCreated(booking, order.SeatIDs)

	ticketIDs := make([]uuid.UUID, 0, len(booking.Tickets))
	for _, t := range booking.Tickets {
		ticketIDs = append(ticketIDs, t.ID)
	}

	return &BookingResult{
		Success:     true,
		Message:     "Payment captured and booking confirmed",
		BookingID:   &booking.ID,
		TicketIDs:   ticketIDs,
		TotalAmount: booking.TotalAmount,
	}
}

func (s *service) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *service) GetCustomerBookings(ctx context.Context, customerID uuid.UUID, limit, offset int) (*BookingListResponse, error) {
	bookings, totalCount, err := s.repo.GetCustomerBookings(ctx, customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &BookingListResponse{
		Bookings:   bookings,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// dispatchBookingCreated assembles the enriched notification payload
// and fires it at the notification and realtime collaborators. Runs
// after commit on its own context: every failure here is logged and
// swallowed, never surfaced to the caller.
func (s *service) dispatchBookingCreated(booking *Booking, seatIDs []uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	event, err := s.eventReader.GetEventWithStadium(ctx, booking.EventID)
	if err != nil {
		s.log.LogDispatchFailure(ctx, "enrich-event", booking.ID.String(), err)
		return
	}

	if s.broadcaster != nil {
		summary := &realtime.BookingSummary{
			BookingID: booking.ID,
			EventID:   booking.EventID,
			SeatIDs:   seatIDs,
			BookedAt:  booking.BookingDate,
		}
		if err := s.broadcaster.NotifyNewBooking(ctx, event.StadiumID, summary); err != nil {
			s.log.LogDispatchFailure(ctx, "realtime", booking.ID.String(), err)
		}
	}

	if s.producer == nil {
		return
	}

	customer, err := s.custReader.GetCustomerByID(ctx, booking.CustomerID)
	if err != nil {
		s.log.LogDispatchFailure(ctx, "enrich-customer", booking.ID.String(), err)
		return
	}

	bookedSeats, err := s.seatRepo.GetSeatsByIDs(ctx, seatIDs)
	if err != nil {
		s.log.LogDispatchFailure(ctx, "enrich-seats", booking.ID.String(), err)
		return
	}
	labels := make([]string, 0, len(bookedSeats))
	for i := range bookedSeats {
		labels = append(labels, bookedSeats[i].Label())
	}

	stadiumName := ""
	if event.Stadium != nil {
		stadiumName = event.Stadium.Name
	}

	notification := &notifications.BookingNotification{
		BookingID:     booking.ID,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		EventID:       event.ID,
		EventName:     event.Name,
		StadiumName:   stadiumName,
		SeatLabels:    labels,
		TotalAmount:   booking.TotalAmount,
		PaymentStatus: string(booking.PaymentStatus),
		BookedAt:      booking.BookingDate,
	}
	// Broker publishes fail transiently during rebalances; a short
	// backoff recovers most of them within the dispatch window.
	err = retry.Do(ctx, retry.DefaultConfig(), retry.Always, func(ctx context.Context) error {
		return s.producer.PublishBookingNotification(ctx, notification)
	})
	if err != nil {
		s.log.LogDispatchFailure(ctx, "kafka", booking.ID.String(), err)
	}
}

// generateOrderID builds an opaque, time-and-random-derived order id.
// Uniqueness only gates a session-scoped lookup, not a security
// boundary.
func generateOrderID() string {
	timestamp := time.Now().Unix()
	shortUUID := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("ORD_%d_%s", timestamp, strings.ToUpper(shortUUID))
}

func bookingFailure(de *DomainError) *BookingResult {
	return &BookingResult{
		Success:         false,
		Message:         de.Message,
		ErrorCode:       de.Code,
		ConflictSeatIDs: de.ConflictSeatIDs,
	}
}

func infrastructureBookingFailure() *BookingResult {
	return &BookingResult{
		Success:   false,
		Message:   "Booking failed due to a temporary problem. Please try again.",
		ErrorCode: CodeInfrastructureError,
	}
}

func orderFailure(de *DomainError) *OrderResult {
	return &OrderResult{
		Success:         false,
		Message:         de.Message,
		ErrorCode:       de.Code,
		ConflictSeatIDs: de.ConflictSeatIDs,
	}
}

func seatIDStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
