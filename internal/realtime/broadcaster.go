package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// BookingSummary is the payload broadcast to clients watching a
// stadium's seat map when a booking commits
type BookingSummary struct {
	BookingID uuid.UUID   `json:"booking_id"`
	EventID   uuid.UUID   `json:"event_id"`
	SeatIDs   []uuid.UUID `json:"seat_ids"`
	BookedAt  time.Time   `json:"booked_at"`
}

// Broadcaster pushes booking events to realtime subscribers
type Broadcaster interface {
	NotifyNewBooking(ctx context.Context, stadiumID uuid.UUID, summary *BookingSummary) error
}

type redisBroadcaster struct {
	client *redis.Client
}

// NewBroadcaster creates a Redis pub/sub backed broadcaster. Each
// stadium has its own channel so seat-map subscribers only receive
// bookings for the venue they are watching.
func NewBroadcaster(client *redis.Client) Broadcaster {
	return &redisBroadcaster{client: client}
}

func stadiumChannel(stadiumID uuid.UUID) string {
	return fmt.Sprintf("stadium:%s:bookings", stadiumID)
}

func (b *redisBroadcaster) NotifyNewBooking(ctx context.Context, stadiumID uuid.UUID, summary *BookingSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal booking summary: %w", err)
	}

	if err := b.client.Publish(ctx, stadiumChannel(stadiumID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}
	return nil
}
