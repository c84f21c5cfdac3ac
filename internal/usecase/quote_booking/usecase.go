package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	catalogRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/catalog"
	lotRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/lot"
)

// Usecase prices a stay and its add-ons without persisting anything.
// It shares the pricing rules with booking creation, so a quote always
// matches what the same booking would cost.
type Usecase struct {
	lots    LotRepository
	catalog CatalogRepository
	logger  Logger
}

// NewUsecase creates the quote usecase
func NewUsecase(lots LotRepository, catalog CatalogRepository, logger Logger) *Usecase {
	return &Usecase{
		lots:    lots,
		catalog: catalog,
		logger:  logger,
	}
}

// Handle prices the requested stay
func (u *Usecase) Handle(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	lot, err := u.lots.GetByID(ctx, req.LotID)
	if err != nil {
		if errors.Is(err, lotRepo.ErrLotNotFound) {
			u.logger.Warn("QuoteBooking: lot=%d not found", req.LotID)
			return nil, ErrLotNotFound
		}
		u.logger.Error("QuoteBooking: failed to load lot=%d: %v", req.LotID, err)
		return nil, fmt.Errorf("%w: QuoteBooking - load lot: %v", ErrInternal, err)
	}

	size := domain.SizeClass(req.SizeClass)
	rate, ok := lot.RateCardFor(size)
	if !ok {
		return nil, ErrSizeNotSupported
	}

	quote := domain.CalculateStay(rate, req.DropOffTime, req.PickUpTime)

	addons := make([]AddonQuote, 0, len(req.ServiceIDs))
	var addonsTotal int64
	for _, serviceID := range req.ServiceIDs {
		svc, err := u.catalog.GetServiceByID(ctx, serviceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return nil, ErrServiceNotFound
			}
			u.logger.Error("QuoteBooking: failed to load service=%d: %v", serviceID, err)
			return nil, fmt.Errorf("%w: QuoteBooking - load service: %v", ErrInternal, err)
		}
		if !svc.Active {
			return nil, ErrServiceNotFound
		}

		price, ok := svc.PriceFor(size)
		if !ok {
			return nil, ErrServiceNotForSize
		}

		addons = append(addons, AddonQuote{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Price:       price,
		})
		addonsTotal += price
	}

	return &Response{
		LotID:       lot.ID,
		LotName:     lot.Name,
		SizeClass:   string(size),
		TotalDays:   quote.TotalDays,
		PricePerDay: quote.PricePerDay,
		BasePrice:   quote.BasePrice,
		Addons:      addons,
		AddonsTotal: addonsTotal,
		TotalPrice:  quote.BasePrice + addonsTotal,
	}, nil
}

func validateRequest(req *Request) error {
	if req.LotID <= 0 {
		return fmt.Errorf("%w: lotID must be positive", ErrInvalidInput)
	}
	if !domain.ValidSizeClass(domain.SizeClass(req.SizeClass)) {
		return fmt.Errorf("%w: unknown size class %q", ErrInvalidInput, req.SizeClass)
	}
	if req.DropOffTime.IsZero() || req.PickUpTime.IsZero() {
		return fmt.Errorf("%w: dropOffTime and pickUpTime are required", ErrInvalidInput)
	}
	if !req.PickUpTime.After(req.DropOffTime) {
		return ErrInvalidDateRange
	}
	return nil
}
