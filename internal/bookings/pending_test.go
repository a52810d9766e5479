package bookings

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *PendingOrder {
	return &PendingOrder{
		OrderID:     "ORD_1700000000_ABCD1234",
		EventID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		SeatIDs:     []uuid.UUID{uuid.MustParse("22222222-2222-2222-2222-222222222222")},
		TotalAmount: 120.0,
		CustomerID:  uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPendingStore_StageSetsTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewPendingOrderStore(client, 15*time.Minute)

	order := testOrder()
	payload, err := json.Marshal(order)
	require.NoError(t, err)

	mock.ExpectSet("pending_order:"+order.OrderID, payload, 15*time.Minute).SetVal("OK")

	err = store.Stage(context.Background(), order)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingStore_GetRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewPendingOrderStore(client, 15*time.Minute)

	order := testOrder()
	payload, err := json.Marshal(order)
	require.NoError(t, err)

	mock.ExpectGet("pending_order:" + order.OrderID).SetVal(string(payload))

	got, err := store.Get(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingStore_GetMissingIsNoPendingOrder(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewPendingOrderStore(client, 15*time.Minute)

	mock.ExpectGet("pending_order:ORDER_X").RedisNil()

	got, err := store.Get(context.Background(), "ORDER_X")
	assert.Nil(t, got)

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, CodeNoPendingOrder, de.Code)
	assert.Equal(t, "No pending booking found in session.", de.Message)
}

func TestPendingStore_Clear(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewPendingOrderStore(client, 15*time.Minute)

	mock.ExpectDel("pending_order:ORD_1").SetVal(1)

	err := store.Clear(context.Background(), "ORD_1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
