package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/Domenick1991/seatmap/internal/service/reservations"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service reservations.ReservationUseCase
}

type createReservationRequest struct {
	SeatID   string `json:"seat_id"`
	FlightID string `json:"flight_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type reservationResponse struct {
	ID          string `json:"id"`
	SeatID      string `json:"seat_id"`
	FlightID    string `json:"flight_id"`
	PassengerID string `json:"passenger_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
}

func NewReservationHandler(service reservations.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.listByFlight)
}

func (h *ReservationHandler) create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reservation, err := h.service.CreateReservation(c.Request.Context(), reservations.CreateReservationInput{
		SeatID:   req.SeatID,
		FlightID: req.FlightID,
		Name:     req.Name,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrSeatTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, toReservationResponse(reservation))
}

func (h *ReservationHandler) listByFlight(c *gin.Context) {
	flightID := c.Query("flight_id")
	if flightID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "flight_id is required"})
		return
	}

	list, err := h.service.ListByFlight(c.Request.Context(), flightID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]reservationResponse, 0, len(list))
	for i := range list {
		out = append(out, toReservationResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func toReservationResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:          r.ID,
		SeatID:      r.SeatID,
		FlightID:    r.FlightID,
		PassengerID: r.PassengerID,
		Name:        r.Name,
		Email:       r.Email,
		Status:      string(r.Status),
		Timestamp:   r.Timestamp.Format(time.RFC3339),
	}
}
