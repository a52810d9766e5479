package events

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reader provides event lookups for the booking flow and browse endpoints.
type Reader interface {
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	GetEventWithStadium(ctx context.Context, id uuid.UUID) (*Event, error)
	ListUpcomingEvents(ctx context.Context, limit int) ([]Event, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Reader {
	return &repository{db: db}
}

func (r *repository) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) GetEventWithStadium(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).
		Preload("Stadium").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) ListUpcomingEvents(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}

	var evts []Event
	err := r.db.WithContext(ctx).
		Preload("Stadium").
		Where("status = ?", StatusScheduled).
		Order("event_date ASC").
		Limit(limit).
		Find(&evts).Error
	return evts, err
}
