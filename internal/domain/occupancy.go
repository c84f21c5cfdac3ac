package domain

import (
	"math"
	"time"
)

// OccupancyDay occupancy snapshot for a single day
type OccupancyDay struct {
	Date         time.Time
	BookingCount int
	Capacity     int
	OccupancyPct int
	High         bool
}

// ForecastHorizonDays length of the occupancy forecast window
const ForecastHorizonDays = 30

// DefaultHighOccupancyPct default flagging threshold, inclusive
const DefaultHighOccupancyPct = 80

// ForecastOccupancy computes the per-day occupancy for a lot over a horizon
// starting at from (truncated to its calendar date). A booking counts on
// every day its [dropOff, pickUp) interval touches. The caller filters
// bookings by status beforehand; cancelled or merely pending rows must not
// be passed in.
func ForecastOccupancy(bookings []*Booking, capacity int, from time.Time, horizonDays, highPct int) []OccupancyDay {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())

	days := make([]OccupancyDay, horizonDays)
	for i := 0; i < horizonDays; i++ {
		dayStart := start.AddDate(0, 0, i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		count := 0
		for _, b := range bookings {
			if b.DropOffTime.Before(dayEnd) && b.PickUpTime.After(dayStart) {
				count++
			}
		}

		pct := 0
		if capacity > 0 {
			pct = int(math.Round(100 * float64(count) / float64(capacity)))
		}

		days[i] = OccupancyDay{
			Date:         dayStart,
			BookingCount: count,
			Capacity:     capacity,
			OccupancyPct: pct,
			High:         pct >= highPct,
		}
	}

	return days
}
