package passenger

import (
	"testing"

	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSynthesize_Reproducible(t *testing.T) {
	seat := domain.Seat{ID: "12D", Class: domain.SeatClassEconomy}

	first := Synthesize(seat, "flight-2")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Synthesize(seat, "flight-2"))
	}
}

func TestSynthesize_KnownVectors(t *testing.T) {
	testCases := []struct {
		seatID   string
		class    domain.SeatClassName
		flightID string
		want     domain.Passenger
	}{
		{
			seatID:   "1A",
			class:    domain.SeatClassFirst,
			flightID: "flight-1",
			want: domain.Passenger{
				ID:       "passenger-1A-flight-1",
				Name:     "Passenger 1A",
				Gender:   domain.GenderMale,
				Activity: domain.ActivityStanding,
				Appearance: domain.Appearance{
					HairColor:     "#dcd0c0",
					SkinTone:      "#ffe0bd",
					ClothingColor: "#064e3b",
				},
			},
		},
		{
			seatID:   "10F",
			class:    domain.SeatClassEconomy,
			flightID: "flight-1",
			want: domain.Passenger{
				ID:       "passenger-10F-flight-1",
				Name:     "Passenger 10F",
				Gender:   domain.GenderFemale,
				Activity: domain.ActivitySleeping,
				Appearance: domain.Appearance{
					HairColor:     "#808080",
					SkinTone:      "#bf9169",
					ClothingColor: "#ec4899",
				},
			},
		},
		{
			seatID:   "4C",
			class:    domain.SeatClassBusiness,
			flightID: "flight-2",
			want: domain.Passenger{
				ID:       "passenger-4C-flight-2",
				Name:     "Passenger 4C",
				Gender:   domain.GenderMale,
				Activity: domain.ActivityReading,
				Appearance: domain.Appearance{
					HairColor:     "#dcd0c0",
					SkinTone:      "#ffe0bd",
					ClothingColor: "#0f766e",
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.seatID+"-"+tc.flightID, func(t *testing.T) {
			seat := domain.Seat{ID: tc.seatID, Class: tc.class}
			assert.Equal(t, tc.want, Synthesize(seat, tc.flightID))
		})
	}
}

func TestHashIdentity(t *testing.T) {
	// 31-multiplier rolling hash with 32-bit signed wraparound, abs'd
	assert.Equal(t, int64(834111778), hashIdentity("1A-flight-1-passenger"))
	assert.Equal(t, int64(124873127), hashIdentity("10F-flight-1-passenger"))
	assert.Equal(t, int64(0), hashIdentity(""))
	assert.GreaterOrEqual(t, hashIdentity("anything at all"), int64(0))
}

func TestSynthesize_FlightChangesOutput(t *testing.T) {
	seat := domain.Seat{ID: "1A", Class: domain.SeatClassFirst}

	p1 := Synthesize(seat, "flight-1")
	p2 := Synthesize(seat, "flight-2")

	assert.NotEqual(t, p1.ID, p2.ID)
}

func TestSynthesizeAll_OnlyUnavailableSeats(t *testing.T) {
	seats := []domain.Seat{
		{ID: "1A", Class: domain.SeatClassFirst, IsAvailable: true},
		{ID: "1B", Class: domain.SeatClassFirst, IsAvailable: false},
		{ID: "4C", Class: domain.SeatClassEconomy, IsAvailable: false},
	}

	passengers := SynthesizeAll(seats, "flight-1")

	assert.Len(t, passengers, 2)
	assert.Equal(t, "passenger-1B-flight-1", passengers[0].ID)
	assert.Equal(t, "passenger-4C-flight-1", passengers[1].ID)
}
