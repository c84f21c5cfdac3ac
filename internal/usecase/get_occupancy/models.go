package get_occupancy

import (
	"github.com/arnakr/AeroPark-Service/internal/domain"
)

// Request inputs for the occupancy forecast
type Request struct {
	LotID int64
}

// DayForecast occupancy for a single calendar day
type DayForecast struct {
	Date         string // YYYY-MM-DD
	BookingCount int
	Capacity     int
	OccupancyPct int
	High         bool
}

// Response the 30-day forecast for one lot
type Response struct {
	LotID    int64
	LotName  string
	Capacity int
	Days     []DayForecast
}

func fromDomainForecast(lot *domain.Lot, days []domain.OccupancyDay) *Response {
	out := make([]DayForecast, 0, len(days))
	for _, d := range days {
		out = append(out, DayForecast{
			Date:         d.Date.Format(domain.DateFormat),
			BookingCount: d.BookingCount,
			Capacity:     d.Capacity,
			OccupancyPct: d.OccupancyPct,
			High:         d.High,
		})
	}

	return &Response{
		LotID:    lot.ID,
		LotName:  lot.Name,
		Capacity: lot.Capacity,
		Days:     out,
	}
}
