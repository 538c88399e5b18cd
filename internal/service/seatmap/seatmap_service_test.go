package seatmap

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAircraftRepository struct {
	mock.Mock
}

func (m *MockAircraftRepository) List(ctx context.Context) ([]domain.AircraftConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AircraftConfig), args.Error(1)
}

func (m *MockAircraftRepository) GetByID(ctx context.Context, id string) (*domain.AircraftConfig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AircraftConfig), args.Error(1)
}

func (m *MockAircraftRepository) ListSeatClasses(ctx context.Context, aircraftID string) ([]domain.SeatClassConfig, error) {
	args := m.Called(ctx, aircraftID)
	return args.Get(0).([]domain.SeatClassConfig), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) ListByFlight(ctx context.Context, flightID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Insert(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetSeatmap(ctx context.Context, flightID string) ([]domain.Seat, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockCache) SetSeatmap(ctx context.Context, flightID string, seats []domain.Seat) error {
	args := m.Called(ctx, flightID, seats)
	return args.Error(0)
}

func (m *MockCache) InvalidateSeatmap(ctx context.Context, flightID string) error {
	args := m.Called(ctx, flightID)
	return args.Error(0)
}

func testAircraft() *domain.AircraftConfig {
	return &domain.AircraftConfig{
		ID:          "a1",
		Rows:        10,
		SeatsPerRow: 6,
		AisleAfter:  3,
		CabinWidth:  3.5,
		CabinLength: 20,
	}
}

func testClasses() []domain.SeatClassConfig {
	return []domain.SeatClassConfig{
		{ID: "a1-first", Name: domain.SeatClassFirst, BasePrice: 500},
		{ID: "a1-business", Name: domain.SeatClassBusiness, BasePrice: 250},
		{ID: "a1-economy", Name: domain.SeatClassEconomy, BasePrice: 100},
	}
}

func TestSeatmapService_GetSeats(t *testing.T) {
	mockAircraft := &MockAircraftRepository{}
	mockReservations := &MockReservationRepository{}
	mockCache := &MockCache{}

	service := NewSeatmapService(mockAircraft, mockReservations, mockCache)

	ctx := context.Background()
	mockCache.On("GetSeatmap", ctx, "flight-1").Return(nil, nil).Once()
	mockAircraft.On("GetByID", ctx, "a1").Return(testAircraft(), nil).Once()
	mockAircraft.On("ListSeatClasses", ctx, "a1").Return(testClasses(), nil).Once()
	mockReservations.On("ListByFlight", ctx, "flight-1").Return([]domain.Reservation{
		{ID: "r1", SeatID: "1A", FlightID: "flight-1", Status: domain.ReservationStatusConfirmed},
		{ID: "r2", SeatID: "4C", FlightID: "flight-1", Status: domain.ReservationStatusCancelled},
	}, nil).Once()
	mockCache.On("SetSeatmap", ctx, "flight-1", mock.Anything).Return(nil).Once()

	seats, err := service.GetSeats(ctx, "a1", "flight-1")

	assert.NoError(t, err)
	assert.Len(t, seats, 60)

	byID := make(map[string]domain.Seat)
	for _, s := range seats {
		byID[s.ID] = s
	}
	assert.False(t, byID["1A"].IsAvailable)
	assert.True(t, byID["4C"].IsAvailable, "cancelled reservation must not block the seat")
	assert.True(t, byID["10F"].IsAvailable)

	mockAircraft.AssertExpectations(t)
	mockReservations.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestSeatmapService_GetSeats_CacheHit(t *testing.T) {
	mockAircraft := &MockAircraftRepository{}
	mockReservations := &MockReservationRepository{}
	mockCache := &MockCache{}

	service := NewSeatmapService(mockAircraft, mockReservations, mockCache)

	ctx := context.Background()
	cached := []domain.Seat{{ID: "1A", IsAvailable: false}}
	mockCache.On("GetSeatmap", ctx, "flight-1").Return(cached, nil).Once()

	seats, err := service.GetSeats(ctx, "a1", "flight-1")

	assert.NoError(t, err)
	assert.Equal(t, cached, seats)
	mockAircraft.AssertNotCalled(t, "GetByID")
	mockReservations.AssertNotCalled(t, "ListByFlight")
}

func TestSeatmapService_GetSeats_AircraftNotFound(t *testing.T) {
	mockAircraft := &MockAircraftRepository{}
	mockReservations := &MockReservationRepository{}

	service := NewSeatmapService(mockAircraft, mockReservations, nil)

	ctx := context.Background()
	mockAircraft.On("GetByID", ctx, "missing").Return(nil, domain.ErrAircraftNotFound).Once()

	seats, err := service.GetSeats(ctx, "missing", "flight-1")

	assert.Nil(t, seats)
	assert.ErrorIs(t, err, domain.ErrAircraftNotFound)
}

func TestSeatmapService_GetSeats_RepositoryError(t *testing.T) {
	mockAircraft := &MockAircraftRepository{}
	mockReservations := &MockReservationRepository{}

	service := NewSeatmapService(mockAircraft, mockReservations, nil)

	ctx := context.Background()
	dbErr := errors.New("connection refused")
	mockAircraft.On("GetByID", ctx, "a1").Return(testAircraft(), nil).Once()
	mockAircraft.On("ListSeatClasses", ctx, "a1").Return([]domain.SeatClassConfig(nil), dbErr).Once()

	seats, err := service.GetSeats(ctx, "a1", "flight-1")

	assert.Nil(t, seats)
	assert.ErrorIs(t, err, dbErr)
}

func TestSeatmapService_GetPassengers(t *testing.T) {
	mockAircraft := &MockAircraftRepository{}
	mockReservations := &MockReservationRepository{}

	service := NewSeatmapService(mockAircraft, mockReservations, nil)

	ctx := context.Background()
	mockAircraft.On("GetByID", ctx, "a1").Return(testAircraft(), nil)
	mockAircraft.On("ListSeatClasses", ctx, "a1").Return(testClasses(), nil)
	mockReservations.On("ListByFlight", ctx, "flight-1").Return([]domain.Reservation{
		{ID: "r1", SeatID: "1A", FlightID: "flight-1", Status: domain.ReservationStatusConfirmed},
		{ID: "r2", SeatID: "10F", FlightID: "flight-1", Status: domain.ReservationStatusPending},
	}, nil)

	passengers, err := service.GetPassengers(ctx, "a1", "flight-1")

	assert.NoError(t, err)
	assert.Len(t, passengers, 2)
	assert.Equal(t, "passenger-1A-flight-1", passengers[0].ID)
	assert.Equal(t, "passenger-10F-flight-1", passengers[1].ID)

	// same identifiers, same passengers
	again, err := service.GetPassengers(ctx, "a1", "flight-1")
	assert.NoError(t, err)
	assert.Equal(t, passengers, again)
}
