package catalog

import (
	"context"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/Domenick1991/seatmap/internal/repository"
)

// CatalogUseCase is the read side of the fleet: aircraft, their seat
// classes and their flights.
type CatalogUseCase interface {
	ListAircraft(ctx context.Context) ([]domain.AircraftConfig, error)
	GetAircraft(ctx context.Context, id string) (*domain.AircraftConfig, error)
	ListSeatClasses(ctx context.Context, aircraftID string) ([]domain.SeatClassConfig, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	GetFlight(ctx context.Context, id string) (*domain.Flight, error)
	ListFlightsByAircraft(ctx context.Context, aircraftID string) ([]domain.Flight, error)
}

type CatalogService struct {
	aircraft repository.AircraftRepository
	flights  repository.FlightRepository
}

func NewCatalogService(aircraft repository.AircraftRepository, flights repository.FlightRepository) *CatalogService {
	return &CatalogService{aircraft: aircraft, flights: flights}
}

func (s *CatalogService) ListAircraft(ctx context.Context) ([]domain.AircraftConfig, error) {
	return s.aircraft.List(ctx)
}

func (s *CatalogService) GetAircraft(ctx context.Context, id string) (*domain.AircraftConfig, error) {
	return s.aircraft.GetByID(ctx, id)
}

func (s *CatalogService) ListSeatClasses(ctx context.Context, aircraftID string) ([]domain.SeatClassConfig, error) {
	return s.aircraft.ListSeatClasses(ctx, aircraftID)
}

func (s *CatalogService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	return s.flights.List(ctx)
}

func (s *CatalogService) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	return s.flights.GetByID(ctx, id)
}

func (s *CatalogService) ListFlightsByAircraft(ctx context.Context, aircraftID string) ([]domain.Flight, error) {
	return s.flights.ListByAircraft(ctx, aircraftID)
}

var _ CatalogUseCase = (*CatalogService)(nil)
