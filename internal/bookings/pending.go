package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PendingOrderStore stages provisional orders between order creation
// and payment capture. Entries expire on their own: an order the
// customer abandons mid-payment simply ages out.
type PendingOrderStore interface {
	Stage(ctx context.Context, order *PendingOrder) error
	Get(ctx context.Context, orderID string) (*PendingOrder, error)
	Clear(ctx context.Context, orderID string) error
}

type redisPendingStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPendingOrderStore creates a Redis-backed pending order store.
// Orders live under pending_order:<id> for the given TTL.
func NewPendingOrderStore(client *redis.Client, ttl time.Duration) PendingOrderStore {
	return &redisPendingStore{
		client: client,
		ttl:    ttl,
	}
}

func pendingOrderKey(orderID string) string {
	return fmt.Sprintf("pending_order:%s", orderID)
}

func (s *redisPendingStore) Stage(ctx context.Context, order *PendingOrder) error {
	data, err := json.Marshal(order)
	if err != nil {
		return NewInfrastructureError("marshal pending order", err)
	}

	if err := s.client.Set(ctx, pendingOrderKey(order.OrderID), data, s.ttl).Err(); err != nil {
		return NewInfrastructureError("stage pending order", err)
	}
	return nil
}

func (s *redisPendingStore) Get(ctx context.Context, orderID string) (*PendingOrder, error) {
	data, err := s.client.Get(ctx, pendingOrderKey(orderID)).Result()
	if err == redis.Nil {
		return nil, ErrNoPendingOrder
	}
	if err != nil {
		return nil, NewInfrastructureError("fetch pending order", err)
	}

	var order PendingOrder
	if err := json.Unmarshal([]byte(data), &order); err != nil {
		return nil, NewInfrastructureError("unmarshal pending order", err)
	}
	return &order, nil
}

func (s *redisPendingStore) Clear(ctx context.Context, orderID string) error {
	if err := s.client.Del(ctx, pendingOrderKey(orderID)).Err(); err != nil {
		return NewInfrastructureError("clear pending order", err)
	}
	return nil
}
