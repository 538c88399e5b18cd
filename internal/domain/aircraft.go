package domain

// AircraftConfig describes the physical cabin an operator registered.
// It is loaded once from storage and never mutated by the engine.
type AircraftConfig struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Model        string  `json:"model"`
	Manufacturer string  `json:"manufacturer"`
	TotalSeats   int     `json:"totalSeats"`
	Rows         int     `json:"rows"`
	SeatsPerRow  int     `json:"seatsPerRow"`
	AisleAfter   int     `json:"aisleAfter"`
	CabinWidth   float64 `json:"cabinWidth"`
	CabinLength  float64 `json:"cabinLength"`
	WindowRows   int     `json:"windowRows"`
	ImageURL     string  `json:"imageUrl,omitempty"`
}

type SeatClassName string

const (
	SeatClassFirst    SeatClassName = "first"
	SeatClassBusiness SeatClassName = "business"
	SeatClassEconomy  SeatClassName = "economy"
)

// SeatClassConfig carries pricing and comfort attributes for one travel
// class of one aircraft. Comfort fields are display-only.
type SeatClassConfig struct {
	ID          string        `json:"id"`
	AircraftID  string        `json:"aircraftId"`
	Name        SeatClassName `json:"name"`
	DisplayName string        `json:"displayName"`
	BasePrice   float64       `json:"basePrice"`
	LegRoom     float64       `json:"legRoom"`
	Recline     float64       `json:"recline"`
	Width       float64       `json:"width"`
	Color       string        `json:"color"`
}
