package ledger

import (
	"testing"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func seatGrid(ids ...string) []domain.Seat {
	seats := make([]domain.Seat, len(ids))
	for i, id := range ids {
		seats[i] = domain.Seat{ID: id, IsAvailable: true}
	}
	return seats
}

func TestApply_MarksReservedSeats(t *testing.T) {
	seats := seatGrid("1A", "1B", "1C")
	reservations := []domain.Reservation{
		{ID: "r1", SeatID: "1B", FlightID: "flight-1", Status: domain.ReservationStatusConfirmed},
	}

	out := Apply(seats, reservations)

	assert.True(t, out[0].IsAvailable)
	assert.False(t, out[1].IsAvailable)
	assert.True(t, out[2].IsAvailable)

	// input slice is left untouched
	assert.True(t, seats[1].IsAvailable)
}

func TestApply_CancelledDoesNotBlock(t *testing.T) {
	seats := seatGrid("1A", "1B")
	reservations := []domain.Reservation{
		{ID: "r1", SeatID: "1A", Status: domain.ReservationStatusCancelled},
		{ID: "r2", SeatID: "1B", Status: domain.ReservationStatusPending},
	}

	out := Apply(seats, reservations)

	assert.True(t, out[0].IsAvailable, "cancelled reservation must free the seat")
	assert.False(t, out[1].IsAvailable, "pending reservation still holds the seat")
}

func TestApply_CancelledPlusConfirmedSameSeat(t *testing.T) {
	seats := seatGrid("2C")
	reservations := []domain.Reservation{
		{ID: "r1", SeatID: "2C", Status: domain.ReservationStatusCancelled},
		{ID: "r2", SeatID: "2C", Status: domain.ReservationStatusConfirmed},
	}

	out := Apply(seats, reservations)
	assert.False(t, out[0].IsAvailable)
}

func TestApply_Idempotent(t *testing.T) {
	seats := seatGrid("1A", "1B", "1C", "2A")
	reservations := []domain.Reservation{
		{ID: "r1", SeatID: "1A", Status: domain.ReservationStatusConfirmed},
		{ID: "r2", SeatID: "2A", Status: domain.ReservationStatusPending},
	}

	once := Apply(seats, reservations)
	twice := Apply(once, reservations)

	assert.Equal(t, once, twice)
}

func TestApply_NoReservations(t *testing.T) {
	out := Apply(seatGrid("1A", "1B"), nil)
	for _, s := range out {
		assert.True(t, s.IsAvailable)
	}
}

func TestUnavailable(t *testing.T) {
	seats := Apply(seatGrid("1A", "1B", "1C"), []domain.Reservation{
		{ID: "r1", SeatID: "1C", Status: domain.ReservationStatusConfirmed},
	})

	taken := Unavailable(seats)
	assert.Len(t, taken, 1)
	assert.Equal(t, "1C", taken[0].ID)
}
