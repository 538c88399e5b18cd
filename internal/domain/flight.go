package domain

import "time"

type Flight struct {
	ID               string    `json:"id"`
	AircraftID       string    `json:"aircraftId"`
	FlightNumber     string    `json:"flightNumber"`
	DepartureAirport string    `json:"departureAirport"`
	ArrivalAirport   string    `json:"arrivalAirport"`
	DepartureTime    time.Time `json:"departureTime"`
	ArrivalTime      time.Time `json:"arrivalTime"`
	Status           string    `json:"status"`
}
