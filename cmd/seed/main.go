package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Domenick1991/seatmap/config"
	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sample-data loader for local development. Reservations here are random
// on purpose; the deterministic passenger synthesis happens at read time
// and never depends on anything this tool writes beyond the records
// themselves.

type sampleAircraft struct {
	domain.AircraftConfig
	flights []domain.Flight
}

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := seed(ctx, pool); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("seed completed")
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	fleet := []sampleAircraft{
		{
			AircraftConfig: domain.AircraftConfig{
				ID: "aircraft-1", Name: "Skyliner 300", Model: "SL-300", Manufacturer: "Aerodyne",
				TotalSeats: 180, Rows: 30, SeatsPerRow: 6, AisleAfter: 3,
				CabinWidth: 3.5, CabinLength: 30, WindowRows: 30,
			},
			flights: []domain.Flight{
				{ID: "flight-1", FlightNumber: "SM101", DepartureAirport: "AMS", ArrivalAirport: "JFK"},
				{ID: "flight-2", FlightNumber: "SM102", DepartureAirport: "JFK", ArrivalAirport: "AMS"},
			},
		},
		{
			AircraftConfig: domain.AircraftConfig{
				ID: "aircraft-2", Name: "Regional Jet 100", Model: "RJ-100", Manufacturer: "Aerodyne",
				TotalSeats: 40, Rows: 10, SeatsPerRow: 4, AisleAfter: 2,
				CabinWidth: 2.8, CabinLength: 12, WindowRows: 10,
			},
			flights: []domain.Flight{
				{ID: "flight-3", FlightNumber: "SM201", DepartureAirport: "AMS", ArrivalAirport: "LHR"},
			},
		},
	}

	classes := []struct {
		name      domain.SeatClassName
		display   string
		basePrice float64
		legRoom   float64
		recline   float64
		width     float64
		color     string
	}{
		{domain.SeatClassFirst, "First Class", 500, 1.2, 45, 0.7, "#b45309"},
		{domain.SeatClassBusiness, "Business Class", 250, 1.0, 30, 0.6, "#1e3a8a"},
		{domain.SeatClassEconomy, "Economy Class", 100, 0.8, 15, 0.5, "#374151"},
	}

	for _, aircraft := range fleet {
		if _, err := pool.Exec(ctx, `INSERT INTO aircraft (id, name, model, manufacturer, total_seats, rows, seats_per_row, aisle_after, cabin_width, cabin_length, window_rows)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO NOTHING`,
			aircraft.ID, aircraft.Name, aircraft.Model, aircraft.Manufacturer, aircraft.TotalSeats,
			aircraft.Rows, aircraft.SeatsPerRow, aircraft.AisleAfter, aircraft.CabinWidth, aircraft.CabinLength, aircraft.WindowRows); err != nil {
			return fmt.Errorf("insert aircraft %s: %w", aircraft.ID, err)
		}

		for _, class := range classes {
			if _, err := pool.Exec(ctx, `INSERT INTO seat_classes (id, aircraft_id, name, display_name, base_price, leg_room, recline, width, color)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				ON CONFLICT (id) DO NOTHING`,
				fmt.Sprintf("%s-%s", aircraft.ID, class.name), aircraft.ID, class.name, class.display,
				class.basePrice, class.legRoom, class.recline, class.width, class.color); err != nil {
				return fmt.Errorf("insert seat class %s for %s: %w", class.name, aircraft.ID, err)
			}
		}

		departure := time.Now().Add(24 * time.Hour)
		for _, flight := range aircraft.flights {
			if _, err := pool.Exec(ctx, `INSERT INTO flights (id, aircraft_id, flight_number, departure_airport, arrival_airport, departure_time, arrival_time, status)
				VALUES ($1, $2, $3, $4, $5, $6, $7, 'scheduled')
				ON CONFLICT (id) DO NOTHING`,
				flight.ID, aircraft.ID, flight.FlightNumber, flight.DepartureAirport, flight.ArrivalAirport,
				departure, departure.Add(7*time.Hour)); err != nil {
				return fmt.Errorf("insert flight %s: %w", flight.ID, err)
			}
			departure = departure.Add(12 * time.Hour)
		}

		if err := seedReservations(ctx, pool, aircraft); err != nil {
			return err
		}
	}
	return nil
}

func seedReservations(ctx context.Context, pool *pgxpool.Pool, aircraft sampleAircraft) error {
	seatIDs := make([]string, 0, aircraft.Rows*aircraft.SeatsPerRow)
	for row := 1; row <= aircraft.Rows; row++ {
		for i := 0; i < aircraft.SeatsPerRow; i++ {
			seatIDs = append(seatIDs, fmt.Sprintf("%d%c", row, domain.SeatLetters[i]))
		}
	}

	count := len(seatIDs) / 4
	for i := 0; i < count; i++ {
		status := domain.ReservationStatusConfirmed
		if rand.Float64() > 0.5 {
			status = domain.ReservationStatusPending
		}

		flight := aircraft.flights[rand.Intn(len(aircraft.flights))]
		seatID := seatIDs[rand.Intn(len(seatIDs))]

		// duplicates just lose against the live-reservation index
		if _, err := pool.Exec(ctx, `INSERT INTO reservations (id, seat_id, flight_id, passenger_id, name, email, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, now())
			ON CONFLICT DO NOTHING`,
			uuid.NewString(), seatID, flight.ID, "passenger-"+uuid.NewString(),
			fmt.Sprintf("Passenger %d", i+1), fmt.Sprintf("passenger%d@example.com", i), status); err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}
	}
	return nil
}
