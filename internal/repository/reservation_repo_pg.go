package repository

import (
	"context"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	ListByFlight(ctx context.Context, flightID string) ([]domain.Reservation, error)
	Insert(ctx context.Context, reservation *domain.Reservation) error
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

func (r *PGReservationRepository) ListByFlight(ctx context.Context, flightID string) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT id, seat_id, flight_id, passenger_id, name, email, status, created_at FROM reservations WHERE flight_id=$1 ORDER BY created_at`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.SeatID, &res.FlightID, &res.PassengerID, &res.Name, &res.Email, &res.Status, &res.Timestamp); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// Insert writes a reservation if and only if the seat is still free for the
// flight. The existence check and the insert run in one transaction, and a
// partial unique index on (seat_id, flight_id) for non-cancelled rows backs
// the check, so concurrent attempts for the same seat leave exactly one
// winner; losers get domain.ErrSeatTaken.
func (r *PGReservationRepository) Insert(ctx context.Context, reservation *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var taken bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE seat_id=$1 AND flight_id=$2 AND status <> 'cancelled')`, reservation.SeatID, reservation.FlightID).Scan(&taken); err != nil {
		return err
	}
	if taken {
		return domain.ErrSeatTaken
	}

	if err := tx.QueryRow(ctx, `INSERT INTO reservations (id, seat_id, flight_id, passenger_id, name, email, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`, reservation.ID, reservation.SeatID, reservation.FlightID, reservation.PassengerID, reservation.Name, reservation.Email, reservation.Status, reservation.Timestamp).
		Scan(&reservation.Timestamp); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSeatTaken
		}
		return err
	}

	return tx.Commit(ctx)
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
