package reservations

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/Domenick1991/seatmap/internal/kafka"
	"github.com/Domenick1991/seatmap/internal/repository"
	"github.com/google/uuid"
)

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	ListByFlight(ctx context.Context, flightID string) ([]domain.Reservation, error)
}

type Cache interface {
	AcquireSeatLock(ctx context.Context, flightID, seatID string, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID, seatID string) error
	InvalidateSeatmap(ctx context.Context, flightID string) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// publishRetries bounds the broker retries for reservation events; the
// reservation itself is already committed when publishing starts.
const publishRetries = 3

type ReservationService struct {
	reservations       repository.ReservationRepository
	cache              Cache
	producer           Producer
	reservationsTopic  string
	notificationsTopic string
	lockTTL            time.Duration
}

type CreateReservationInput struct {
	SeatID   string `json:"seat_id"`
	FlightID string `json:"flight_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

func NewReservationService(
	reservations repository.ReservationRepository,
	cache Cache,
	producer Producer,
	reservationsTopic string,
	lockTTL time.Duration,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		reservations:      reservations,
		cache:             cache,
		producer:          producer,
		reservationsTopic: reservationsTopic,
		lockTTL:           lockTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateReservation is the only mutating entry point of the engine.
// Validation failures and seat conflicts come back as domain.ErrValidation
// and domain.ErrSeatTaken; the repository insert is the authoritative
// atomic step, the Redis lock only short-circuits concurrent callers
// before they reach the database.
func (s *ReservationService) CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	if s.cache != nil {
		ok, err := s.cache.AcquireSeatLock(ctx, input.FlightID, input.SeatID, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrSeatTaken
		}
		defer func() {
			_ = s.cache.ReleaseSeatLock(ctx, input.FlightID, input.SeatID)
		}()
	}

	reservation := &domain.Reservation{
		ID:          uuid.NewString(),
		SeatID:      input.SeatID,
		FlightID:    input.FlightID,
		PassengerID: "passenger-" + uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		Status:      domain.ReservationStatusConfirmed,
		Timestamp:   time.Now(),
	}

	if err := s.reservations.Insert(ctx, reservation); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateSeatmap(ctx, input.FlightID); err != nil {
			log.Printf("invalidate seatmap for flight %s: %v", input.FlightID, err)
		}
	}

	if err := s.publish(ctx, "reservation_created", reservation); err != nil {
		log.Printf("WARNING: failed to publish reservation_created event for reservation %s: %v", reservation.ID, err)
	}
	return reservation, nil
}

func (s *ReservationService) ListByFlight(ctx context.Context, flightID string) ([]domain.Reservation, error) {
	return s.reservations.ListByFlight(ctx, flightID)
}

func validate(input CreateReservationInput) error {
	switch {
	case input.SeatID == "":
		return fmt.Errorf("%w: seat_id", domain.ErrValidation)
	case input.FlightID == "":
		return fmt.Errorf("%w: flight_id", domain.ErrValidation)
	case input.Name == "":
		return fmt.Errorf("%w: name", domain.ErrValidation)
	case input.Email == "":
		return fmt.Errorf("%w: email", domain.ErrValidation)
	}
	return nil
}

func (s *ReservationService) publish(ctx context.Context, eventType string, reservation *domain.Reservation) error {
	if s.producer == nil || s.reservationsTopic == "" {
		return nil
	}
	event := kafka.ReservationEvent{
		Type:          eventType,
		ReservationID: reservation.ID,
		SeatID:        reservation.SeatID,
		FlightID:      reservation.FlightID,
		Name:          reservation.Name,
		Email:         reservation.Email,
		Status:        string(reservation.Status),
		Timestamp:     reservation.Timestamp,
	}
	if err := s.producer.PublishWithRetry(ctx, s.reservationsTopic, reservation.ID, event, publishRetries); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.PublishWithRetry(ctx, s.notificationsTopic, reservation.ID, event, publishRetries)
	}
	return nil
}

var _ ReservationUseCase = (*ReservationService)(nil)
