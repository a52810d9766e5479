package seats

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Seat CRUD (admin tooling; seats are never physically deleted)
	CreateSeats(ctx context.Context, seats []Seat) error
	GetSeatByID(ctx context.Context, id uuid.UUID) (*Seat, error)
	GetSeatsByIDs(ctx context.Context, seatIDs []uuid.UUID) ([]Seat, error)
	GetSeatsByStadiumID(ctx context.Context, stadiumID uuid.UUID) ([]Seat, error)
	UpdateSeat(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error

	// Ledger-derived availability: seat ids holding an active ticket
	// for the event. Advisory reads only; the booking transaction does
	// its own locked re-check.
	GetBookedSeatIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// SEAT CRUD

func (r *repository) CreateSeats(ctx context.Context, seats []Seat) error {
	return r.db.WithContext(ctx).Create(&seats).Error
}

func (r *repository) GetSeatByID(ctx context.Context, id uuid.UUID) (*Seat, error) {
	var seat Seat
	err := r.db.WithContext(ctx).First(&seat, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *repository) GetSeatsByIDs(ctx context.Context, seatIDs []uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("id IN ?", seatIDs).
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetSeatsByStadiumID(ctx context.Context, stadiumID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("stadium_id = ?", stadiumID).
		Order("section ASC, row_number ASC, seat_number ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) UpdateSeat(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Seat{}).Where("id = ?", id).Updates(updates).Error
}

// LEDGER-DERIVED AVAILABILITY

func (r *repository) GetBookedSeatIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	var seatIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("seat_id").
		Where("event_id = ?", eventID).
		Where("status IN ?", []string{"Booked", "Used"}).
		Scan(&seatIDs).Error
	return seatIDs, err
}
