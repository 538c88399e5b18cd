package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation is the only persisted record the engine writes. It is never
// mutated after creation; a seat counts as taken for a flight while at
// least one non-cancelled reservation references it.
type Reservation struct {
	ID          string            `json:"id"`
	SeatID      string            `json:"seatId"`
	FlightID    string            `json:"flightId"`
	PassengerID string            `json:"passengerId"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Status      ReservationStatus `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
}
