package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/seatmap/api"
	"github.com/Domenick1991/seatmap/config"
	"github.com/Domenick1991/seatmap/internal/service/catalog"
	"github.com/Domenick1991/seatmap/internal/service/reservations"
	"github.com/Domenick1991/seatmap/internal/service/seatmap"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, catalogSvc catalog.CatalogUseCase, seatmapSvc seatmap.SeatmapUseCase, reservationSvc reservations.ReservationUseCase) error {
	router := newRouter(cfg, catalogSvc, seatmapSvc, reservationSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, catalogSvc catalog.CatalogUseCase, seatmapSvc seatmap.SeatmapUseCase, reservationSvc reservations.ReservationUseCase) *gin.Engine {
	router := gin.Default()

	v1 := router.Group("/api/v1")
	api.NewAircraftHandler(catalogSvc).Register(v1.Group("/aircraft"))
	api.NewFlightHandler(catalogSvc, seatmapSvc).Register(v1.Group("/flights"))
	api.NewReservationHandler(reservationSvc).Register(v1.Group("/reservations"))

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
