package get_occupancy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	lotRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/lot"
)

type fakeBookings struct {
	bookings []*domain.Booking
	statuses []domain.BookingStatus
	from, to time.Time
}

func (f *fakeBookings) GetOverlappingWindow(_ context.Context, _ int64, from, to time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	f.from = from
	f.to = to
	f.statuses = statuses
	return f.bookings, nil
}

type fakeLots struct {
	lot *domain.Lot
}

func (f *fakeLots) GetByID(_ context.Context, id int64) (*domain.Lot, error) {
	if f.lot == nil || f.lot.ID != id {
		return nil, lotRepo.ErrLotNotFound
	}
	return f.lot, nil
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_ThirtyDayForecast(t *testing.T) {
	now := time.Date(2026, 9, 1, 11, 30, 0, 0, time.UTC)

	bookings := &fakeBookings{bookings: []*domain.Booking{
		{DropOffTime: now, PickUpTime: now.AddDate(0, 0, 3)},
		{DropOffTime: now.AddDate(0, 0, 1), PickUpTime: now.AddDate(0, 0, 2)},
	}}
	lots := &fakeLots{lot: &domain.Lot{ID: 1, Name: "Terminal East", Capacity: 2}}

	uc := NewUsecase(bookings, lots, fixedTime{t: now}, 0, nopLogger{})

	resp, err := uc.Handle(context.Background(), &Request{LotID: 1})
	require.NoError(t, err)

	assert.Equal(t, "Terminal East", resp.LotName)
	assert.Equal(t, 2, resp.Capacity)
	require.Len(t, resp.Days, domain.ForecastHorizonDays)

	assert.Equal(t, "2026-09-01", resp.Days[0].Date)
	assert.Equal(t, 1, resp.Days[0].BookingCount)
	assert.Equal(t, 50, resp.Days[0].OccupancyPct)
	assert.False(t, resp.Days[0].High)

	assert.Equal(t, 2, resp.Days[1].BookingCount)
	assert.Equal(t, 100, resp.Days[1].OccupancyPct)
	assert.True(t, resp.Days[1].High)

	assert.Equal(t, 0, resp.Days[4].BookingCount)

	// Only spot-holding statuses may be counted
	assert.Equal(t, domain.ActiveStatuses, bookings.statuses)
}

func TestHandle_FetchWindowCoversWholeCurrentDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 18, 45, 0, 0, time.UTC)
	bookings := &fakeBookings{}
	lots := &fakeLots{lot: &domain.Lot{ID: 1, Capacity: 2}}

	uc := NewUsecase(bookings, lots, fixedTime{t: now}, 0, nopLogger{})

	_, err := uc.Handle(context.Background(), &Request{LotID: 1})
	require.NoError(t, err)

	// A pick-up earlier today still touches day 0 of the forecast
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), bookings.from)
	assert.Equal(t, bookings.from.AddDate(0, 0, domain.ForecastHorizonDays), bookings.to)
}

func TestHandle_LotNotFound(t *testing.T) {
	uc := NewUsecase(&fakeBookings{}, &fakeLots{}, fixedTime{t: time.Now()}, 0, nopLogger{})

	_, err := uc.Handle(context.Background(), &Request{LotID: 9})

	assert.ErrorIs(t, err, ErrLotNotFound)
}

func TestHandle_InvalidLotID(t *testing.T) {
	uc := NewUsecase(&fakeBookings{}, &fakeLots{}, fixedTime{t: time.Now()}, 0, nopLogger{})

	_, err := uc.Handle(context.Background(), &Request{LotID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHandle_ConfiguredThreshold(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	bookings := &fakeBookings{bookings: []*domain.Booking{
		{DropOffTime: now, PickUpTime: now.AddDate(0, 0, 1)},
	}}
	lots := &fakeLots{lot: &domain.Lot{ID: 1, Capacity: 2}}

	uc := NewUsecase(bookings, lots, fixedTime{t: now}, 50, nopLogger{})

	resp, err := uc.Handle(context.Background(), &Request{LotID: 1})
	require.NoError(t, err)

	assert.Equal(t, 50, resp.Days[0].OccupancyPct)
	assert.True(t, resp.Days[0].High)
}
