package get_occupancy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	lotRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/lot"
)

// Usecase builds the 30-day occupancy forecast the operator console shows
// per lot. Only bookings that actually hold a spot (confirmed through ready)
// count; pending, cancelled and no-show rows do not.
type Usecase struct {
	bookings BookingRepository
	lots     LotRepository
	timeProv TimeProvider
	highPct  int
	logger   Logger
}

// NewUsecase creates the occupancy usecase. highPct is the inclusive
// flagging threshold; pass 0 for the default.
func NewUsecase(bookings BookingRepository, lots LotRepository, timeProv TimeProvider, highPct int, logger Logger) *Usecase {
	if highPct <= 0 {
		highPct = domain.DefaultHighOccupancyPct
	}
	return &Usecase{
		bookings: bookings,
		lots:     lots,
		timeProv: timeProv,
		highPct:  highPct,
		logger:   logger,
	}
}

// Handle builds the forecast for one lot
func (u *Usecase) Handle(ctx context.Context, req *Request) (*Response, error) {
	if req.LotID <= 0 {
		return nil, fmt.Errorf("%w: lotID must be positive", ErrInvalidInput)
	}

	lot, err := u.lots.GetByID(ctx, req.LotID)
	if err != nil {
		if errors.Is(err, lotRepo.ErrLotNotFound) {
			u.logger.Warn("GetOccupancy: lot=%d not found", req.LotID)
			return nil, ErrLotNotFound
		}
		u.logger.Error("GetOccupancy: failed to load lot=%d: %v", req.LotID, err)
		return nil, fmt.Errorf("%w: GetOccupancy - load lot: %v", ErrInternal, err)
	}

	now := u.timeProv.Now()
	// Fetch from the same day boundary the forecast counts against, so a
	// booking whose pick-up already passed today still lands in day 0
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, domain.ForecastHorizonDays)

	bookings, err := u.bookings.GetOverlappingWindow(ctx, lot.ID, from, to, domain.ActiveStatuses)
	if err != nil {
		u.logger.Error("GetOccupancy: failed to load bookings for lot=%d: %v", lot.ID, err)
		return nil, fmt.Errorf("%w: GetOccupancy - load bookings: %v", ErrInternal, err)
	}

	days := domain.ForecastOccupancy(bookings, lot.Capacity, now, domain.ForecastHorizonDays, u.highPct)

	return fromDomainForecast(lot, days), nil
}
