package quote_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	catalogRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/catalog"
	lotRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/lot"
)

type fakeLots struct {
	lot *domain.Lot
}

func (f *fakeLots) GetByID(_ context.Context, id int64) (*domain.Lot, error) {
	if f.lot == nil || f.lot.ID != id {
		return nil, lotRepo.ErrLotNotFound
	}
	return f.lot, nil
}

type fakeCatalog struct {
	services map[int64]*domain.Service
}

func (f *fakeCatalog) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUsecase() *Usecase {
	lot := &domain.Lot{
		ID:      1,
		Name:    "Terminal East",
		BaseFee: 1000,
		DailyRates: map[domain.SizeClass]int64{
			domain.SizeSedan: 2600,
		},
	}
	catalog := &fakeCatalog{services: map[int64]*domain.Service{
		7: {
			ID:     7,
			Name:   "Exterior wash",
			Active: true,
			Prices: map[domain.SizeClass]int64{domain.SizeSedan: 4500},
		},
	}}
	return NewUsecase(&fakeLots{lot: lot}, catalog, nopLogger{})
}

func TestHandle_QuoteMatchesPricingRules(t *testing.T) {
	uc := newTestUsecase()

	resp, err := uc.Handle(context.Background(), &Request{
		LotID:       1,
		SizeClass:   "sedan",
		DropOffTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		PickUpTime:  time.Date(2026, 9, 4, 18, 30, 0, 0, time.UTC),
		ServiceIDs:  []int64{7},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, int64(2600), resp.PricePerDay)
	assert.Equal(t, int64(8800), resp.BasePrice)
	assert.Equal(t, int64(4500), resp.AddonsTotal)
	assert.Equal(t, int64(13300), resp.TotalPrice)
	assert.Equal(t, "Terminal East", resp.LotName)
	require.Len(t, resp.Addons, 1)
	assert.Equal(t, "Exterior wash", resp.Addons[0].ServiceName)
}

func TestHandle_NoAddons(t *testing.T) {
	uc := newTestUsecase()

	resp, err := uc.Handle(context.Background(), &Request{
		LotID:       1,
		SizeClass:   "sedan",
		DropOffTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		PickUpTime:  time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.AddonsTotal)
	assert.Equal(t, resp.BasePrice, resp.TotalPrice)
	assert.Empty(t, resp.Addons)
}

func TestHandle_UnknownSizeClass(t *testing.T) {
	uc := newTestUsecase()

	_, err := uc.Handle(context.Background(), &Request{
		LotID:       1,
		SizeClass:   "lorry",
		DropOffTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		PickUpTime:  time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHandle_SizeWithoutRate(t *testing.T) {
	uc := newTestUsecase()

	_, err := uc.Handle(context.Background(), &Request{
		LotID:       1,
		SizeClass:   "van",
		DropOffTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		PickUpTime:  time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrSizeNotSupported)
}

func TestHandle_InvalidRange(t *testing.T) {
	uc := newTestUsecase()

	_, err := uc.Handle(context.Background(), &Request{
		LotID:       1,
		SizeClass:   "sedan",
		DropOffTime: time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC),
		PickUpTime:  time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
