package bookings

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"cricverse/internal/customers"
	"cricverse/internal/events"
	"cricverse/internal/seats"
	"cricverse/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository reproduces the repository's contract in memory: the
// mutex stands in for the seat row lock, serializing concurrent
// attempts exactly the way FOR UPDATE does.
type fakeRepository struct {
	mu sync.Mutex

	seats    map[uuid.UUID]float64
	ledger   map[string]uuid.UUID // (eventID|seatID) -> booking id
	bookings map[uuid.UUID]*Booking
	txnIDs   map[string]bool

	failCapture error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		seats:    make(map[uuid.UUID]float64),
		ledger:   make(map[string]uuid.UUID),
		bookings: make(map[uuid.UUID]*Booking),
		txnIDs:   make(map[string]bool),
	}
}

func ledgerKey(eventID, seatID uuid.UUID) string {
	return eventID.String() + "|" + seatID.String()
}

func (f *fakeRepository) BookSeat(ctx context.Context, seatID, eventID, customerID uuid.UUID) (*Booking, *Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	price, ok := f.seats[seatID]
	if !ok {
		return nil, nil, ErrSeatNotFound
	}
	if _, taken := f.ledger[ledgerKey(eventID, seatID)]; taken {
		return nil, nil, ErrSeatAlreadyBooked
	}

	booking := &Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		EventID:       eventID,
		TotalAmount:   price,
		PaymentStatus: PaymentPending,
	}
	ticket := &Ticket{
		ID:         uuid.New(),
		EventID:    eventID,
		SeatID:     seatID,
		CustomerID: customerID,
		BookingID:  booking.ID,
		Status:     TicketBooked,
	}
	f.ledger[ledgerKey(eventID, seatID)] = booking.ID
	f.bookings[booking.ID] = booking
	return booking, ticket, nil
}

func (f *fakeRepository) ValidateAndPriceSeats(ctx context.Context, eventID uuid.UUID, seatIDs []uuid.UUID) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var total float64
	var conflicts []uuid.UUID
	for _, seatID := range seatIDs {
		price, ok := f.seats[seatID]
		if !ok {
			return 0, ErrSeatsNotFound
		}
		if _, taken := f.ledger[ledgerKey(eventID, seatID)]; taken {
			conflicts = append(conflicts, seatID)
		}
		total += price
	}
	if len(conflicts) > 0 {
		return 0, NewSeatsAlreadyBookedError(conflicts)
	}
	return total, nil
}

func (f *fakeRepository) CaptureOrder(ctx context.Context, order *PendingOrder, paymentMethod, transactionID string) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCapture != nil {
		return nil, f.failCapture
	}

	var conflicts []uuid.UUID
	for _, seatID := range order.SeatIDs {
		if _, taken := f.ledger[ledgerKey(order.EventID, seatID)]; taken {
			conflicts = append(conflicts, seatID)
		}
	}
	if len(conflicts) > 0 {
		return nil, NewSeatsNoLongerAvailableError(conflicts)
	}

	if f.txnIDs[transactionID] {
		return nil, NewInfrastructureError("create payment", errors.New("duplicate key value violates unique constraint"))
	}

	booking := &Booking{
		ID:            uuid.New(),
		CustomerID:    order.CustomerID,
		EventID:       order.EventID,
		TotalAmount:   order.TotalAmount,
		PaymentStatus: PaymentCompleted,
	}
	for _, seatID := range order.SeatIDs {
		f.ledger[ledgerKey(order.EventID, seatID)] = booking.ID
		booking.Tickets = append(booking.Tickets, Ticket{
			ID:        uuid.New(),
			EventID:   order.EventID,
			SeatID:    seatID,
			BookingID: booking.ID,
			Status:    TicketBooked,
		})
	}
	f.txnIDs[transactionID] = true
	f.bookings[booking.ID] = booking
	return booking, nil
}

func (f *fakeRepository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return booking, nil
}

func (f *fakeRepository) GetCustomerBookings(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, int64(len(out)), nil
}

// fakePendingStore is an in-memory PendingOrderStore
type fakePendingStore struct {
	mu     sync.Mutex
	orders map[string]*PendingOrder
}

func newFakePendingStore() *fakePendingStore {
	return &fakePendingStore{orders: make(map[string]*PendingOrder)}
}

func (f *fakePendingStore) Stage(ctx context.Context, order *PendingOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[order.OrderID] = order
	return nil
}

func (f *fakePendingStore) Get(ctx context.Context, orderID string) (*PendingOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok {
		return nil, ErrNoPendingOrder
	}
	copied := *order
	return &copied, nil
}

func (f *fakePendingStore) Clear(ctx context.Context, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.orders, orderID)
	return nil
}

func (f *fakePendingStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

// Minimal read-side fakes for dispatch enrichment

type fakeEventReader struct{ event *events.Event }

func (f *fakeEventReader) GetEventByID(ctx context.Context, id uuid.UUID) (*events.Event, error) {
	return f.event, nil
}

func (f *fakeEventReader) GetEventWithStadium(ctx context.Context, id uuid.UUID) (*events.Event, error) {
	return f.event, nil
}

func (f *fakeEventReader) ListUpcomingEvents(ctx context.Context, limit int) ([]events.Event, error) {
	return nil, nil
}

type fakeCustomerReader struct{ customer *customers.Customer }

func (f *fakeCustomerReader) GetCustomerByID(ctx context.Context, id uuid.UUID) (*customers.Customer, error) {
	return f.customer, nil
}

func (f *fakeCustomerReader) GetCustomerByEmail(ctx context.Context, email string) (*customers.Customer, error) {
	return f.customer, nil
}

type fakeSeatRepo struct{}

func (f *fakeSeatRepo) CreateSeats(ctx context.Context, s []seats.Seat) error { return nil }
func (f *fakeSeatRepo) GetSeatByID(ctx context.Context, id uuid.UUID) (*seats.Seat, error) {
	return nil, errors.New("not found")
}
func (f *fakeSeatRepo) GetSeatsByIDs(ctx context.Context, seatIDs []uuid.UUID) ([]seats.Seat, error) {
	return nil, nil
}
func (f *fakeSeatRepo) GetSeatsByStadiumID(ctx context.Context, stadiumID uuid.UUID) ([]seats.Seat, error) {
	return nil, nil
}
func (f *fakeSeatRepo) UpdateSeat(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return nil
}
func (f *fakeSeatRepo) GetBookedSeatIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func newTestService(repo Repository, pending PendingOrderStore) Service {
	event := &events.Event{ID: uuid.New(), Name: "Stars vs Sixers"}
	customer := &customers.Customer{ID: uuid.New(), Name: "Ravi", Email: "ravi@example.com"}
	return NewService(
		repo,
		pending,
		&fakeSeatRepo{},
		&fakeEventReader{event: event},
		&fakeCustomerReader{customer: customer},
		nil, // no Kafka in unit tests
		nil, // no broadcaster in unit tests
		logger.New(),
	)
}

func TestBookSeat_Success(t *testing.T) {
	repo := newFakeRepository()
	seatID := uuid.New()
	repo.seats[seatID] = 50.0

	svc := newTestService(repo, newFakePendingStore())

	result := svc.BookSeat(context.Background(), seatID, uuid.New(), uuid.New())

	require.True(t, result.Success)
	require.NotNil(t, result.BookingID)
	require.NotNil(t, result.TicketID)
	assert.Equal(t, 50.0, result.TotalAmount)
}

func TestBookSeat_SeatNotFound(t *testing.T) {
	svc := newTestService(newFakeRepository(), newFakePendingStore())

	result := svc.BookSeat(context.Background(), uuid.New(), uuid.New(), uuid.New())

	require.False(t, result.Success)
	assert.Equal(t, "Seat not found", result.Message)
	assert.Equal(t, CodeSeatNotFound, result.ErrorCode)
	assert.Nil(t, result.BookingID)
}

func TestBookSeat_AlreadyBooked(t *testing.T) {
	repo := newFakeRepository()
	seatID := uuid.New()
	eventID := uuid.New()
	repo.seats[seatID] = 50.0

	svc := newTestService(repo, newFakePendingStore())

	first := svc.BookSeat(context.Background(), seatID, eventID, uuid.New())
	require.True(t, first.Success)

	second := svc.BookSeat(context.Background(), seatID, eventID, uuid.New())
	require.False(t, second.Success)
	assert.Equal(t, "Seat is already booked for this event", second.Message)
	assert.Equal(t, CodeSeatAlreadyBooked, second.ErrorCode)
}

func TestBookSeat_MutualExclusion(t *testing.T) {
	repo := newFakeRepository()
	seatID := uuid.New()
	eventID := uuid.New()
	repo.seats[seatID] = 75.0

	svc := newTestService(repo, newFakePendingStore())

	const attempts = 20
	results := make([]*BookingResult, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.BookSeat(context.Background(), seatID, eventID, uuid.New())
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, result := range results {
		if result.Success {
			successes++
		} else {
			assert.Equal(t, CodeSeatAlreadyBooked, result.ErrorCode)
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent attempt may win the seat")
}

func TestCreatePaymentOrder_AmountIsSeatPriceSum(t *testing.T) {
	repo := newFakeRepository()
	seatA := uuid.New()
	seatB := uuid.New()
	repo.seats[seatA] = 50.0
	repo.seats[seatB] = 70.0

	svc := newTestService(repo, newFakePendingStore())

	result := svc.CreatePaymentOrder(context.Background(), uuid.New(), uuid.New(), []uuid.UUID{seatA, seatB})

	require.True(t, result.Success)
	assert.Equal(t, 120.0, result.Amount)
	assert.True(t, strings.HasPrefix(result.OrderID, "ORD_"), "order id %q should be ORD_-prefixed", result.OrderID)
}

func TestCreatePaymentOrder_SeatsNotFound(t *testing.T) {
	repo := newFakeRepository()
	seatA := uuid.New()
	repo.seats[seatA] = 50.0

	svc := newTestService(repo, newFakePendingStore())

	result := svc.CreatePaymentOrder(context.Background(), uuid.New(), uuid.New(), []uuid.UUID{seatA, uuid.New()})

	require.False(t, result.Success)
	assert.Equal(t, CodeSeatsNotFound, result.ErrorCode)
}

func TestCreatePaymentOrder_ConflictNamesSeats(t *testing.T) {
	repo := newFakeRepository()
	seatID := uuid.New()
	eventID := uuid.New()
	repo.seats[seatID] = 50.0

	svc := newTestService(repo, newFakePendingStore())

	booked := svc.BookSeat(context.Background(), seatID, eventID, uuid.New())
	require.True(t, booked.Success)

	result := svc.CreatePaymentOrder(context.Background(), uuid.New(), eventID, []uuid.UUID{seatID})

	require.False(t, result.Success)
	assert.Equal(t, CodeSeatsAlreadyBooked, result.ErrorCode)
	assert.Equal(t, []uuid.UUID{seatID}, result.ConflictSeatIDs)
}

func TestCapturePayment_Success(t *testing.T) {
	repo := newFakeRepository()
	pending := newFakePendingStore()
	seatA := uuid.New()
	seatB := uuid.New()
	repo.seats[seatA] = 50.0
	repo.seats[seatB] = 70.0
	customerID := uuid.New()
	eventID := uuid.New()

	svc := newTestService(repo, pending)

	order := svc.CreatePaymentOrder(context.Background(), customerID, eventID, []uuid.UUID{seatA, seatB})
	require.True(t, order.Success)

	result := svc.CapturePayment(context.Background(), customerID, order.OrderID, "card", "TXN_GATEWAY_1")

	require.True(t, result.Success)
	require.NotNil(t, result.BookingID)
	assert.Equal(t, 120.0, result.TotalAmount)
	assert.Len(t, result.TicketIDs, 2)

	booking, err := repo.GetBookingByID(context.Background(), *result.BookingID)
	require.NoError(t, err)
	assert.Equal(t, PaymentCompleted, booking.PaymentStatus)
	assert.Equal(t, 120.0, booking.TotalAmount)

	// Cleared on success: the order cannot be captured twice.
	assert.Equal(t, 0, pending.count())
}

func TestCapturePayment_SecondCaptureFails(t *testing.T) {
	repo := newFakeRepository()
	pending := newFakePendingStore()
	seatID := uuid.New()
	repo.seats[seatID] = 50.0
	customerID := uuid.New()

	svc := newTestService(repo, pending)

	order := svc.CreatePaymentOrder(context.Background(), customerID, uuid.New(), []uuid.UUID{seatID})
	require.True(t, order.Success)

	first := svc.CapturePayment(context.Background(), customerID, order.OrderID, "card", "TXN_GATEWAY_2")
	require.True(t, first.Success)

	second := svc.CapturePayment(context.Background(), customerID, order.OrderID, "card", "TXN_GATEWAY_2")
	require.False(t, second.Success)
	assert.Equal(t, "No pending booking found in session.", second.Message)
	assert.Equal(t, CodeNoPendingOrder, second.ErrorCode)
}

func TestCapturePayment_NoPendingOrder(t *testing.T) {
	svc := newTestService(newFakeRepository(), newFakePendingStore())

	result := svc.CapturePayment(context.Background(), uuid.New(), "ORDER_X", "card", "TXN_GATEWAY_3")

	require.False(t, result.Success)
	assert.Equal(t, "No pending booking found in session.", result.Message)
}

func TestCapturePayment_CustomerMismatch(t *testing.T) {
	repo := newFakeRepository()
	pending := newFakePendingStore()
	seatID := uuid.New()
	repo.seats[seatID] = 50.0
	owner := uuid.New()

	svc := newTestService(repo, pending)

	order := svc.CreatePaymentOrder(context.Background(), owner, uuid.New(), []uuid.UUID{seatID})
	require.True(t, order.Success)

	result := svc.CapturePayment(context.Background(), uuid.New(), order.OrderID, "card", "TXN_GATEWAY_4")

	require.False(t, result.Success)
	assert.Equal(t, CodeCustomerIDMismatch, result.ErrorCode)

	// Nothing was mutated: no booking rows, staged order intact.
	assert.Empty(t, repo.bookings)
	assert.Equal(t, 1, pending.count())
}

func TestCapturePayment_RaceThenRecheck(t *testing.T) {
	repo := newFakeRepository()
	pending := newFakePendingStore()
	seatA := uuid.New()
	seatB := uuid.New()
	repo.seats[seatA] = 50.0
	repo.seats[seatB] = 70.0
	customerID := uuid.New()
	eventID := uuid.New()

	svc := newTestService(repo, pending)

	order := svc.CreatePaymentOrder(context.Background(), customerID, eventID, []uuid.UUID{seatA, seatB})
	require.True(t, order.Success)

	// A direct booking takes seat B between order creation and
	// capture.
	direct := svc.BookSeat(context.Background(), seatB, eventID, uuid.New())
	require.True(t, direct.Success)
	bookingsBefore := len(repo.bookings)

	result := svc.CapturePayment(context.Background(), customerID, order.OrderID, "card", "TXN_GATEWAY_5")

	require.False(t, result.Success)
	assert.Equal(t, "Seats became unavailable during payment.", result.Message)
	assert.Equal(t, CodeSeatsNoLongerAvailable, result.ErrorCode)
	assert.Equal(t, []uuid.UUID{seatB}, result.ConflictSeatIDs)

	// No rows created for the failed capture, and the order stays
	// staged so the client can retry.
	assert.Len(t, repo.bookings, bookingsBefore)
	assert.Equal(t, 1, pending.count())
}

func TestCapturePayment_InfrastructureFailureKeepsOrder(t *testing.T) {
	repo := newFakeRepository()
	pending := newFakePendingStore()
	seatID := uuid.New()
	repo.seats[seatID] = 50.0
	customerID := uuid.New()

	svc := newTestService(repo, pending)

	order := svc.CreatePaymentOrder(context.Background(), customerID, uuid.New(), []uuid.UUID{seatID})
	require.True(t, order.Success)

	repo.failCapture = NewInfrastructureError("create payment", errors.New("connection reset"))

	result := svc.CapturePayment(context.Background(), customerID, order.OrderID, "card", "TXN_GATEWAY_6")

	require.False(t, result.Success)
	assert.Equal(t, CodeInfrastructureError, result.ErrorCode)
	assert.Equal(t, 1, pending.count())
}

func TestGenerateOrderID_Opaque(t *testing.T) {
	a := generateOrderID()
	b := generateOrderID()

	assert.True(t, strings.HasPrefix(a, "ORD_"))
	assert.NotEqual(t, a, b)
}
