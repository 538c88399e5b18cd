package seatmap

import (
	"context"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/Domenick1991/seatmap/internal/layout"
	"github.com/Domenick1991/seatmap/internal/ledger"
	"github.com/Domenick1991/seatmap/internal/passenger"
	"github.com/Domenick1991/seatmap/internal/repository"
)

type SeatmapUseCase interface {
	GetSeats(ctx context.Context, aircraftID, flightID string) ([]domain.Seat, error)
	GetPassengers(ctx context.Context, aircraftID, flightID string) ([]domain.Passenger, error)
}

type Cache interface {
	GetSeatmap(ctx context.Context, flightID string) ([]domain.Seat, error)
	SetSeatmap(ctx context.Context, flightID string, seats []domain.Seat) error
	InvalidateSeatmap(ctx context.Context, flightID string) error
}

type SeatmapService struct {
	aircraft     repository.AircraftRepository
	reservations repository.ReservationRepository
	cache        Cache
}

func NewSeatmapService(aircraft repository.AircraftRepository, reservations repository.ReservationRepository, cache Cache) *SeatmapService {
	return &SeatmapService{
		aircraft:     aircraft,
		reservations: reservations,
		cache:        cache,
	}
}

// GetSeats regenerates the full seat map for a flight: layout from the
// aircraft configuration, availability from the reservation records. The
// cached copy is only a read shortcut; reservation writes invalidate it.
func (s *SeatmapService) GetSeats(ctx context.Context, aircraftID, flightID string) ([]domain.Seat, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSeatmap(ctx, flightID); err == nil && cached != nil {
			return cached, nil
		}
	}

	aircraft, err := s.aircraft.GetByID(ctx, aircraftID)
	if err != nil {
		return nil, err
	}
	classes, err := s.aircraft.ListSeatClasses(ctx, aircraftID)
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservations.ListByFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	seats := ledger.Apply(layout.Generate(*aircraft, classes), reservations)

	if s.cache != nil {
		_ = s.cache.SetSeatmap(ctx, flightID, seats)
	}
	return seats, nil
}

// GetPassengers derives the deterministic passengers occupying the taken
// seats of a flight.
func (s *SeatmapService) GetPassengers(ctx context.Context, aircraftID, flightID string) ([]domain.Passenger, error) {
	seats, err := s.GetSeats(ctx, aircraftID, flightID)
	if err != nil {
		return nil, err
	}
	return passenger.SynthesizeAll(ledger.Unavailable(seats), flightID), nil
}

var _ SeatmapUseCase = (*SeatmapService)(nil)
