package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/seatmap/config"
	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/Domenick1991/seatmap/internal/email"
	"github.com/Domenick1991/seatmap/internal/kafka"
	"github.com/Domenick1991/seatmap/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	flightRepo := repository.NewFlightRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.ConsumeEvents(ctx, emailSender.Send); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	sweepTicker := time.NewTicker(time.Duration(cfg.Worker.SweepMinutes) * time.Minute)
	defer sweepTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweepTicker.C:
			reportOccupancy(ctx, flightRepo, reservationRepo)
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}

// reportOccupancy logs how many live reservations each flight carries.
func reportOccupancy(ctx context.Context, flights repository.FlightRepository, reservations repository.ReservationRepository) {
	list, err := flights.List(ctx)
	if err != nil {
		log.Printf("list flights error: %v", err)
		return
	}

	for _, flight := range list {
		records, err := reservations.ListByFlight(ctx, flight.ID)
		if err != nil {
			log.Printf("list reservations for flight %s error: %v", flight.ID, err)
			continue
		}
		live := 0
		for _, r := range records {
			if r.Status != domain.ReservationStatusCancelled {
				live++
			}
		}
		log.Printf("flight %s (%s): %d live reservations", flight.ID, flight.FlightNumber, live)
	}
}
