package domain

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Activity string

const (
	ActivityReading  Activity = "reading"
	ActivitySleeping Activity = "sleeping"
	ActivityStanding Activity = "standing"
	ActivitySitting  Activity = "sitting"
)

type Appearance struct {
	HairColor     string `json:"hairColor"`
	SkinTone      string `json:"skinTone"`
	ClothingColor string `json:"clothingColor"`
}

// Passenger is entirely derived from (seatId, flightId); it is never
// persisted and must come out identical on every synthesis.
type Passenger struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Gender     Gender     `json:"gender"`
	Activity   Activity   `json:"activity"`
	Appearance Appearance `json:"appearance"`
}
