package get_occupancy

import (
	getOccupancy "github.com/arnakr/AeroPark-Service/internal/usecase/get_occupancy"
)

// DayResponse occupancy for a single day
type DayResponse struct {
	Date         string `json:"date"`
	BookingCount int    `json:"bookingCount"`
	Capacity     int    `json:"capacity"`
	OccupancyPct int    `json:"occupancyPct"`
	High         bool   `json:"high"`
}

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	LotID    int64         `json:"lotId"`
	LotName  string        `json:"lotName"`
	Capacity int           `json:"capacity"`
	Days     []DayResponse `json:"days"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getOccupancy.Response) *OccupancyResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Date:         d.Date,
			BookingCount: d.BookingCount,
			Capacity:     d.Capacity,
			OccupancyPct: d.OccupancyPct,
			High:         d.High,
		})
	}

	return &OccupancyResponse{
		LotID:    resp.LotID,
		LotName:  resp.LotName,
		Capacity: resp.Capacity,
		Days:     days,
	}
}
