package seats

import (
	"context"
	"fmt"

	"cricverse/internal/events"
	"cricverse/internal/shared/config"
	"cricverse/pkg/cache"

	"github.com/google/uuid"
)

// Service interface defines seat business logic
type Service interface {
	CreateSeats(ctx context.Context, stadiumID uuid.UUID, reqs []CreateSeatRequest) ([]Seat, error)
	GetSeat(ctx context.Context, id uuid.UUID) (*Seat, error)
	UpdateSeat(ctx context.Context, id uuid.UUID, req UpdateSeatRequest) error
	GetEventAvailability(ctx context.Context, eventID uuid.UUID) (*EventAvailability, error)
}

type service struct {
	repo      Repository
	eventRepo events.Reader
	cache     cache.Service
	cfg       *config.Config
}

func NewService(repo Repository, eventRepo events.Reader, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		repo:      repo,
		eventRepo: eventRepo,
		cache:     cacheService,
		cfg:       cfg,
	}
}

func (s *service) CreateSeats(ctx context.Context, stadiumID uuid.UUID, reqs []CreateSeatRequest) ([]Seat, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("no seats to create")
	}

	seats := make([]Seat, 0, len(reqs))
	for _, req := range reqs {
		seats = append(seats, Seat{
			StadiumID:   stadiumID,
			Section:     req.Section,
			RowNumber:   req.RowNumber,
			SeatNumber:  req.SeatNumber,
			SeatType:    req.SeatType,
			Price:       req.Price,
			IsAvailable: true,
		})
	}

	if err := s.repo.CreateSeats(ctx, seats); err != nil {
		return nil, fmt.Errorf("failed to create seats: %w", err)
	}
	return seats, nil
}

func (s *service) GetSeat(ctx context.Context, id uuid.UUID) (*Seat, error) {
	return s.repo.GetSeatByID(ctx, id)
}

func (s *service) UpdateSeat(ctx context.Context, id uuid.UUID, req UpdateSeatRequest) error {
	updates := map[string]interface{}{}
	if req.Price != nil {
		if *req.Price < 0 {
			return fmt.Errorf("price cannot be negative")
		}
		updates["price"] = *req.Price
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.SeatType != nil {
		updates["seat_type"] = *req.SeatType
	}
	if len(updates) == 0 {
		return nil
	}
	return s.repo.UpdateSeat(ctx, id, updates)
}

// GetEventAvailability reports per-seat availability for an event,
// derived from the ticket ledger. Results are cached briefly; the
// booking transaction never trusts this view.
func (s *service) GetEventAvailability(ctx context.Context, eventID uuid.UUID) (*EventAvailability, error) {
	cacheKey := fmt.Sprintf("availability:%s", eventID)

	var availability EventAvailability
	err := s.cache.GetOrSet(ctx, cacheKey, s.cfg.Redis.CacheTTL, func() (interface{}, error) {
		return s.loadEventAvailability(ctx, eventID)
	}, &availability)
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

func (s *service) loadEventAvailability(ctx context.Context, eventID uuid.UUID) (*EventAvailability, error) {
	event, err := s.eventRepo.GetEventWithStadium(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("event not found: %w", err)
	}

	allSeats, err := s.repo.GetSeatsByStadiumID(ctx, event.StadiumID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seats: %w", err)
	}

	bookedIDs, err := s.repo.GetBookedSeatIDs(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked seats: %w", err)
	}

	booked := make(map[uuid.UUID]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	availability := &EventAvailability{
		EventID:   eventID.String(),
		EventName: event.Name,
		Sections:  map[string]*SectionAvailability{},
	}
	if event.Stadium != nil {
		availability.StadiumName = event.Stadium.Name
	}

	for _, seat := range allSeats {
		section, ok := availability.Sections[seat.Section]
		if !ok {
			section = &SectionAvailability{}
			availability.Sections[seat.Section] = section
		}

		isFree := !booked[seat.ID] && seat.IsAvailable
		section.TotalSeats++
		if isFree {
			section.AvailableSeats++
		}
		section.Seats = append(section.Seats, SeatAvailability{
			ID:         seat.ID.String(),
			RowNumber:  seat.RowNumber,
			SeatNumber: seat.SeatNumber,
			SeatType:   seat.SeatType,
			Price:      seat.Price,
			Available:  isFree,
		})

		availability.TotalCapacity++
		if isFree {
			availability.TotalAvailable++
		}
	}

	return availability, nil
}
