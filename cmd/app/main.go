package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/seatmap/config"
	"github.com/Domenick1991/seatmap/internal/bootstrap"
	"github.com/Domenick1991/seatmap/internal/cache"
	"github.com/Domenick1991/seatmap/internal/kafka"
	"github.com/Domenick1991/seatmap/internal/repository"
	"github.com/Domenick1991/seatmap/internal/service/catalog"
	"github.com/Domenick1991/seatmap/internal/service/reservations"
	"github.com/Domenick1991/seatmap/internal/service/seatmap"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Seatmap.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	aircraftRepo := repository.NewAircraftRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	catalogService := catalog.NewCatalogService(aircraftRepo, flightRepo)
	seatmapService := seatmap.NewSeatmapService(aircraftRepo, reservationRepo, redisCache)
	reservationService := reservations.NewReservationService(
		reservationRepo,
		redisCache,
		producer,
		cfg.Kafka.ReservationsTopic,
		time.Duration(cfg.Seatmap.LockTTLSeconds)*time.Second,
		reservations.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, catalogService, seatmapService, reservationService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
