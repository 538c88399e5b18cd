package layout

import (
	"fmt"
	"math"

	"github.com/Domenick1991/seatmap/internal/domain"
)

// aisleWidth is the walking gap inserted after the configured seat index,
// in the same unit as the cabin dimensions.
const aisleWidth = 0.5

// Generate builds the full seat grid for an aircraft: row class bands,
// seat ids, prices and 3D placement. Pure; reservation state is applied
// separately by the ledger, every seat comes out available.
//
// The first max(1, 10%) of rows are first class, the next max(2, 20%)
// business, the rest economy. A row whose band has no matching seat class
// config produces no seats at all.
func Generate(aircraft domain.AircraftConfig, classes []domain.SeatClassConfig) []domain.Seat {
	if aircraft.Rows <= 0 || aircraft.SeatsPerRow <= 0 {
		return []domain.Seat{}
	}

	// Columns beyond the letter alphabet cannot be named, so a wider row
	// is clamped rather than allowed to fail a read.
	seatsPerRow := aircraft.SeatsPerRow
	if seatsPerRow > len(domain.SeatLetters) {
		seatsPerRow = len(domain.SeatLetters)
	}

	firstClassRows := int(math.Max(1, math.Floor(float64(aircraft.Rows)*0.1)))
	businessClassRows := int(math.Max(2, math.Floor(float64(aircraft.Rows)*0.2)))

	rowSpacing := aircraft.CabinLength / float64(aircraft.Rows)
	seatWidth := aircraft.CabinWidth / float64(seatsPerRow+1)
	totalWidth := float64(seatsPerRow)*seatWidth + aisleWidth
	startX := -totalWidth/2 + seatWidth/2

	seats := make([]domain.Seat, 0, aircraft.Rows*seatsPerRow)
	for row := 1; row <= aircraft.Rows; row++ {
		band := domain.SeatClassEconomy
		switch {
		case row <= firstClassRows:
			band = domain.SeatClassFirst
		case row <= firstClassRows+businessClassRows:
			band = domain.SeatClassBusiness
		}

		class, ok := findClass(classes, band)
		if !ok {
			continue
		}

		for i := 0; i < seatsPerRow; i++ {
			column := string(domain.SeatLetters[i])
			x := startX + float64(i)*seatWidth
			if i >= aircraft.AisleAfter {
				x += aisleWidth
			}
			z := -float64(row-1) * rowSpacing

			seats = append(seats, domain.Seat{
				ID:          fmt.Sprintf("%d%s", row, column),
				AircraftID:  aircraft.ID,
				ClassID:     class.ID,
				Row:         row,
				Column:      column,
				Position:    domain.Position{X: x, Y: 0, Z: z},
				IsAvailable: true,
				Price:       class.BasePrice,
				Class:       class.Name,
			})
		}
	}
	return seats
}

func findClass(classes []domain.SeatClassConfig, name domain.SeatClassName) (domain.SeatClassConfig, bool) {
	for _, c := range classes {
		if c.Name == name {
			return c, true
		}
	}
	return domain.SeatClassConfig{}, false
}
