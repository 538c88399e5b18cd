package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AircraftRepository interface {
	List(ctx context.Context) ([]domain.AircraftConfig, error)
	GetByID(ctx context.Context, id string) (*domain.AircraftConfig, error)
	ListSeatClasses(ctx context.Context, aircraftID string) ([]domain.SeatClassConfig, error)
}

type PGAircraftRepository struct {
	db *pgxpool.Pool
}

func NewAircraftRepository(db *pgxpool.Pool) AircraftRepository {
	return &PGAircraftRepository{db: db}
}

func (r *PGAircraftRepository) List(ctx context.Context) ([]domain.AircraftConfig, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, model, manufacturer, total_seats, rows, seats_per_row, aisle_after, cabin_width, cabin_length, window_rows, COALESCE(image_url, '') FROM aircraft ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aircraft := make([]domain.AircraftConfig, 0)
	for rows.Next() {
		var a domain.AircraftConfig
		if err := rows.Scan(&a.ID, &a.Name, &a.Model, &a.Manufacturer, &a.TotalSeats, &a.Rows, &a.SeatsPerRow, &a.AisleAfter, &a.CabinWidth, &a.CabinLength, &a.WindowRows, &a.ImageURL); err != nil {
			return nil, err
		}
		aircraft = append(aircraft, a)
	}
	return aircraft, rows.Err()
}

func (r *PGAircraftRepository) GetByID(ctx context.Context, id string) (*domain.AircraftConfig, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, model, manufacturer, total_seats, rows, seats_per_row, aisle_after, cabin_width, cabin_length, window_rows, COALESCE(image_url, '') FROM aircraft WHERE id=$1`, id)
	var a domain.AircraftConfig
	if err := row.Scan(&a.ID, &a.Name, &a.Model, &a.Manufacturer, &a.TotalSeats, &a.Rows, &a.SeatsPerRow, &a.AisleAfter, &a.CabinWidth, &a.CabinLength, &a.WindowRows, &a.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAircraftNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAircraftRepository) ListSeatClasses(ctx context.Context, aircraftID string) ([]domain.SeatClassConfig, error) {
	rows, err := r.db.Query(ctx, `SELECT id, aircraft_id, name, display_name, base_price, leg_room, recline, width, color FROM seat_classes WHERE aircraft_id=$1 ORDER BY base_price DESC`, aircraftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := make([]domain.SeatClassConfig, 0)
	for rows.Next() {
		var c domain.SeatClassConfig
		if err := rows.Scan(&c.ID, &c.AircraftID, &c.Name, &c.DisplayName, &c.BasePrice, &c.LegRoom, &c.Recline, &c.Width, &c.Color); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

var _ AircraftRepository = (*PGAircraftRepository)(nil)
