package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/Domenick1991/seatmap/internal/service/catalog"
	"github.com/Domenick1991/seatmap/internal/service/seatmap"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	catalog  catalog.CatalogUseCase
	seatmaps seatmap.SeatmapUseCase
}

func NewFlightHandler(catalogSvc catalog.CatalogUseCase, seatmaps seatmap.SeatmapUseCase) *FlightHandler {
	return &FlightHandler{catalog: catalogSvc, seatmaps: seatmaps}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/seatmap", h.seatmap)
	router.GET("/:id/passengers", h.passengers)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.catalog.ListFlights(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.catalog.GetFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) seatmap(c *gin.Context) {
	flight, err := h.catalog.GetFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	seats, err := h.seatmaps.GetSeats(c.Request.Context(), flight.AircraftID, flight.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, seats)
}

func (h *FlightHandler) passengers(c *gin.Context) {
	flight, err := h.catalog.GetFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	passengers, err := h.seatmaps.GetPassengers(c.Request.Context(), flight.AircraftID, flight.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, passengers)
}
