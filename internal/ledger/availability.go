package ledger

import "github.com/Domenick1991/seatmap/internal/domain"

// Apply reconciles a generated seat layout with the reservation records of
// one flight. A seat is unavailable iff at least one non-cancelled
// reservation claims its id. Pure and idempotent; callers must recompute
// after every reservation write instead of trusting a stale result.
func Apply(seats []domain.Seat, reservations []domain.Reservation) []domain.Seat {
	reserved := ReservedSeatIDs(reservations)

	out := make([]domain.Seat, len(seats))
	for i, seat := range seats {
		seat.IsAvailable = !reserved[seat.ID]
		out[i] = seat
	}
	return out
}

// ReservedSeatIDs collects the seat ids claimed by non-cancelled
// reservations.
func ReservedSeatIDs(reservations []domain.Reservation) map[string]bool {
	reserved := make(map[string]bool, len(reservations))
	for _, r := range reservations {
		if r.Status == domain.ReservationStatusCancelled {
			continue
		}
		reserved[r.SeatID] = true
	}
	return reserved
}

// Unavailable filters a reconciled layout down to the taken seats.
func Unavailable(seats []domain.Seat) []domain.Seat {
	taken := make([]domain.Seat, 0)
	for _, seat := range seats {
		if !seat.IsAvailable {
			taken = append(taken, seat)
		}
	}
	return taken
}
