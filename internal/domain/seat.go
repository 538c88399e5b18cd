package domain

// SeatLetters is the column alphabet. The letter I is skipped so columns
// cannot be confused with the digit 1 on printed tickets.
const SeatLetters = "ABCDEFGHJK"

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Seat is a derived record: identity is (aircraftId, row, column) and the
// whole value is regenerated on every query. IsAvailable is only meaningful
// after the reservation ledger has been applied.
type Seat struct {
	ID          string        `json:"id"`
	AircraftID  string        `json:"aircraftId"`
	ClassID     string        `json:"classId"`
	Row         int           `json:"row"`
	Column      string        `json:"column"`
	Position    Position      `json:"position"`
	IsAvailable bool          `json:"isAvailable"`
	Price       float64       `json:"price"`
	Class       SeatClassName `json:"class"`
}
