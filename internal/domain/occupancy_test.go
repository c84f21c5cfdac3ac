package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int, hour int) time.Time {
	return time.Date(2026, 9, d, hour, 0, 0, 0, time.UTC)
}

func TestForecastOccupancy_CountsOverlappingDays(t *testing.T) {
	bookings := []*Booking{
		{DropOffTime: day(1, 10), PickUpTime: day(4, 14)}, // days 1-4
		{DropOffTime: day(2, 8), PickUpTime: day(3, 20)},  // days 2-3
	}

	days := ForecastOccupancy(bookings, 10, day(1, 0), 5, DefaultHighOccupancyPct)
	require.Len(t, days, 5)

	assert.Equal(t, 1, days[0].BookingCount) // Sep 1
	assert.Equal(t, 2, days[1].BookingCount) // Sep 2
	assert.Equal(t, 2, days[2].BookingCount) // Sep 3
	assert.Equal(t, 1, days[3].BookingCount) // Sep 4, pick-up at 14:00 still occupies
	assert.Equal(t, 0, days[4].BookingCount) // Sep 5
}

func TestForecastOccupancy_FlagsAtThresholdInclusive(t *testing.T) {
	bookings := make([]*Booking, 8)
	for i := range bookings {
		bookings[i] = &Booking{DropOffTime: day(1, 8), PickUpTime: day(2, 8)}
	}

	// 8 of 10 spots is exactly 80% and must be flagged
	days := ForecastOccupancy(bookings, 10, day(1, 0), 1, DefaultHighOccupancyPct)
	require.Len(t, days, 1)

	assert.Equal(t, 80, days[0].OccupancyPct)
	assert.True(t, days[0].High)
}

func TestForecastOccupancy_BelowThresholdNotFlagged(t *testing.T) {
	bookings := make([]*Booking, 7)
	for i := range bookings {
		bookings[i] = &Booking{DropOffTime: day(1, 8), PickUpTime: day(2, 8)}
	}

	days := ForecastOccupancy(bookings, 10, day(1, 0), 1, DefaultHighOccupancyPct)
	require.Len(t, days, 1)

	assert.Equal(t, 70, days[0].OccupancyPct)
	assert.False(t, days[0].High)
}

func TestForecastOccupancy_ZeroCapacity(t *testing.T) {
	bookings := []*Booking{{DropOffTime: day(1, 8), PickUpTime: day(2, 8)}}

	days := ForecastOccupancy(bookings, 0, day(1, 0), 1, DefaultHighOccupancyPct)
	require.Len(t, days, 1)

	assert.Equal(t, 1, days[0].BookingCount)
	assert.Equal(t, 0, days[0].OccupancyPct)
	assert.False(t, days[0].High)
}

func TestForecastOccupancy_HorizonLength(t *testing.T) {
	days := ForecastOccupancy(nil, 10, day(1, 13), ForecastHorizonDays, DefaultHighOccupancyPct)

	require.Len(t, days, 30)
	assert.Equal(t, day(1, 0), days[0].Date)
	assert.Equal(t, day(30, 0), days[29].Date)
}

func TestForecastOccupancy_CustomThreshold(t *testing.T) {
	bookings := []*Booking{
		{DropOffTime: day(1, 8), PickUpTime: day(2, 8)},
	}

	days := ForecastOccupancy(bookings, 2, day(1, 0), 1, 50)
	require.Len(t, days, 1)

	assert.Equal(t, 50, days[0].OccupancyPct)
	assert.True(t, days[0].High)
}
