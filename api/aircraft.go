package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/Domenick1991/seatmap/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AircraftHandler struct {
	service catalog.CatalogUseCase
}

func NewAircraftHandler(service catalog.CatalogUseCase) *AircraftHandler {
	return &AircraftHandler{service: service}
}

func (h *AircraftHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/seat-classes", h.seatClasses)
	router.GET("/:id/flights", h.flights)
}

func (h *AircraftHandler) list(c *gin.Context) {
	aircraft, err := h.service.ListAircraft(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, aircraft)
}

func (h *AircraftHandler) get(c *gin.Context) {
	aircraft, err := h.service.GetAircraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAircraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, aircraft)
}

func (h *AircraftHandler) seatClasses(c *gin.Context) {
	classes, err := h.service.ListSeatClasses(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *AircraftHandler) flights(c *gin.Context) {
	flights, err := h.service.ListFlightsByAircraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}
