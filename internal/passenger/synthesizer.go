package passenger

import (
	"fmt"

	"github.com/Domenick1991/seatmap/internal/domain"
)

// Fixed palettes. Order matters: table indices are derived from the seat
// hash and must stay stable forever, as must the tables themselves.
var (
	hairColors = []string{"#241c11", "#4f3824", "#a65e2e", "#d3b17d", "#dcd0c0", "#808080"}
	skinTones  = []string{"#ffe0bd", "#ffcd94", "#eac086", "#bf9169", "#8d5524", "#5a3a1a"}

	clothingColors = map[domain.SeatClassName][]string{
		domain.SeatClassEconomy:  {"#3b82f6", "#10b981", "#f59e0b", "#6b7280", "#ec4899"},
		domain.SeatClassBusiness: {"#1e3a8a", "#0f766e", "#92400e", "#374151", "#831843"},
		domain.SeatClassFirst:    {"#312e81", "#064e3b", "#78350f", "#111827", "#701a75"},
	}

	activities = []domain.Activity{
		domain.ActivityReading,
		domain.ActivitySleeping,
		domain.ActivityStanding,
		domain.ActivitySitting,
	}
)

// Synthesize derives a passenger for a reserved seat from identifiers
// alone. Same (seat id, flight id) in, same passenger out, across
// processes and restarts; the rolling hash below is the only entropy
// source and must never change.
func Synthesize(seat domain.Seat, flightID string) domain.Passenger {
	hash := hashIdentity(fmt.Sprintf("%s-%s-passenger", seat.ID, flightID))

	gender := domain.GenderFemale
	if hash%2 == 0 {
		gender = domain.GenderMale
	}

	clothes := clothingColors[seat.Class]

	return domain.Passenger{
		ID:       fmt.Sprintf("passenger-%s-%s", seat.ID, flightID),
		Name:     fmt.Sprintf("Passenger %s", seat.ID),
		Gender:   gender,
		Activity: activities[(hash*11)%int64(len(activities))],
		Appearance: domain.Appearance{
			HairColor:     hairColors[hash%int64(len(hairColors))],
			SkinTone:      skinTones[(hash*3)%int64(len(skinTones))],
			ClothingColor: clothes[(hash*7)%int64(len(clothes))],
		},
	}
}

// SynthesizeAll derives passengers for every unavailable seat, in seat
// order.
func SynthesizeAll(seats []domain.Seat, flightID string) []domain.Passenger {
	passengers := make([]domain.Passenger, 0, len(seats))
	for _, seat := range seats {
		if seat.IsAvailable {
			continue
		}
		passengers = append(passengers, Synthesize(seat, flightID))
	}
	return passengers
}

// hashIdentity is a 31-multiplier polynomial rolling hash with signed
// 32-bit wraparound, then absolute value. The multiplications applied to
// the result later (x3, x7, x11) are done in 64 bits without re-wrapping,
// so the derived table indices are exact.
func hashIdentity(s string) int64 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}
