package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	bookingRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/booking"
	catalogRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/catalog"
	lotRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/lot"
	"github.com/arnakr/AeroPark-Service/internal/integrations/payments"
	"github.com/arnakr/AeroPark-Service/internal/service/notifications"
	"github.com/arnakr/AeroPark-Service/pkg/refcode"
)

// referenceRetries how many fresh references to try on a collision
const referenceRetries = 2

// Usecase creates a booking: prices the stay and the selected add-ons,
// persists everything in one transaction and opens a payment session.
type Usecase struct {
	bookings  BookingRepository
	addons    AddonRepository
	lots      LotRepository
	catalog   CatalogRepository
	payments  PaymentClient
	notifier  Notifier
	txManager TransactionManager
	timeProv  TimeProvider
	logger    Logger
}

// NewUsecase creates the booking creation usecase
func NewUsecase(
	bookings BookingRepository,
	addons AddonRepository,
	lots LotRepository,
	catalog CatalogRepository,
	paymentClient PaymentClient,
	notifier Notifier,
	txManager TransactionManager,
	timeProv TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookings:  bookings,
		addons:    addons,
		lots:      lots,
		catalog:   catalog,
		payments:  paymentClient,
		notifier:  notifier,
		txManager: txManager,
		timeProv:  timeProv,
		logger:    logger,
	}
}

// Handle creates the booking.
//
// The booking row and its addon rows are written in one serializable
// transaction. The payment session is opened only after the transaction
// commits: if the provider refuses, the booking stays pending and the
// customer can retry payment, so ErrPaymentSession is a partial success.
func (u *Usecase) Handle(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := u.timeProv.Now()
	if err := validateDropOffDate(req.DropOffTime, now); err != nil {
		return nil, err
	}

	lot, err := u.lots.GetByID(ctx, req.LotID)
	if err != nil {
		if errors.Is(err, lotRepo.ErrLotNotFound) {
			u.logger.Warn("CreateBooking: lot=%d not found", req.LotID)
			return nil, ErrLotNotFound
		}
		u.logger.Error("CreateBooking: failed to load lot=%d: %v", req.LotID, err)
		return nil, fmt.Errorf("%w: CreateBooking - load lot: %v", ErrInternal, err)
	}

	size := domain.SizeClass(req.SizeClass)
	rate, ok := lot.RateCardFor(size)
	if !ok {
		u.logger.Warn("CreateBooking: lot=%d has no rate for size=%s", lot.ID, size)
		return nil, ErrSizeNotSupported
	}

	quote := domain.CalculateStay(rate, req.DropOffTime, req.PickUpTime)

	addons, addonsTotal, err := u.priceAddons(ctx, req.ServiceIDs, size)
	if err != nil {
		return nil, err
	}

	if req.DiscountAmount > quote.BasePrice+addonsTotal {
		return nil, fmt.Errorf("%w: discount exceeds booking total", ErrInvalidInput)
	}

	locale := req.Locale
	if locale == "" {
		locale = domain.DefaultLocale
	}

	booking := &domain.Booking{
		Status:          domain.StatusPending,
		UserID:          req.UserID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		LotID:           lot.ID,
		LicensePlate:    req.LicensePlate,
		SizeClass:       size,
		DropOffTime:     req.DropOffTime,
		PickUpTime:      req.PickUpTime,
		TotalDays:       quote.TotalDays,
		PricePerDay:     quote.PricePerDay,
		BasePrice:       quote.BasePrice,
		AddonsTotal:     addonsTotal,
		DiscountAmount:  req.DiscountAmount,
		TotalPrice:      quote.BasePrice + addonsTotal - req.DiscountAmount,
		ArrivalFlight:   req.ArrivalFlight,
		DepartureFlight: req.DepartureFlight,
		Notes:           req.Notes,
		Locale:          locale,
	}

	created, err := u.persist(ctx, booking, addons)
	if err != nil {
		u.logger.Error("CreateBooking: failed to persist booking for lot=%d: %v", lot.ID, err)
		return nil, fmt.Errorf("%w: CreateBooking - persist: %v", ErrInternal, err)
	}

	u.logger.Info("CreateBooking: created booking=%d reference=%s lot=%d total=%d",
		created.ID, created.Reference, lot.ID, created.TotalPrice)

	session, err := u.payments.CreateSession(ctx, &payments.SessionRequest{
		Reference: created.Reference,
		Amount:    created.TotalPrice,
		Currency:  "ISK",
		ReturnURL: req.ReturnURL,
	})
	if err != nil {
		// Booking is already committed; surface the failure but keep the row
		u.logger.Error("CreateBooking: payment session failed for reference=%s: %v", created.Reference, err)
		return nil, ErrPaymentSession
	}

	u.notifier.Dispatch(ctx, notifications.EventBookingReceived, created, lot.Name)

	return buildResponse(created, addons, session.RedirectURL), nil
}

// priceAddons resolves and prices the selected services for the vehicle size
func (u *Usecase) priceAddons(ctx context.Context, serviceIDs []int64, size domain.SizeClass) ([]*domain.BookingAddon, int64, error) {
	addons := make([]*domain.BookingAddon, 0, len(serviceIDs))
	var total int64

	for _, serviceID := range serviceIDs {
		svc, err := u.catalog.GetServiceByID(ctx, serviceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				u.logger.Warn("CreateBooking: service=%d not found", serviceID)
				return nil, 0, ErrServiceNotFound
			}
			u.logger.Error("CreateBooking: failed to load service=%d: %v", serviceID, err)
			return nil, 0, fmt.Errorf("%w: CreateBooking - load service: %v", ErrInternal, err)
		}
		if !svc.Active {
			return nil, 0, ErrServiceNotFound
		}

		price, ok := svc.PriceFor(size)
		if !ok {
			u.logger.Warn("CreateBooking: service=%d has no price for size=%s", serviceID, size)
			return nil, 0, ErrServiceNotForSize
		}

		addons = append(addons, &domain.BookingAddon{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Price:       price,
			Status:      domain.AddonPending,
		})
		total += price
	}

	return addons, total, nil
}

// persist writes the booking and its addons in one serializable transaction,
// regenerating the reference on the rare collision
func (u *Usecase) persist(ctx context.Context, booking *domain.Booking, addons []*domain.BookingAddon) (*domain.Booking, error) {
	var created *domain.Booking

	for attempt := 0; ; attempt++ {
		booking.Reference = refcode.New()

		err := u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			b, err := u.bookings.Create(txCtx, booking)
			if err != nil {
				return err
			}
			if len(addons) > 0 {
				if err := u.addons.CreateForBooking(txCtx, b.ID, addons); err != nil {
					return err
				}
			}
			created = b
			return nil
		})
		if err == nil {
			return created, nil
		}
		if errors.Is(err, bookingRepo.ErrDuplicateReference) && attempt < referenceRetries {
			u.logger.Warn("CreateBooking: reference collision on %s, regenerating", booking.Reference)
			continue
		}
		return nil, err
	}
}

func buildResponse(b *domain.Booking, addons []*domain.BookingAddon, redirectURL string) *Response {
	lines := make([]AddonLine, 0, len(addons))
	for _, a := range addons {
		lines = append(lines, AddonLine{
			ServiceID:   a.ServiceID,
			ServiceName: a.ServiceName,
			Price:       a.Price,
		})
	}

	return &Response{
		ID:                 b.ID,
		Reference:          b.Reference,
		Status:             string(b.Status),
		LotID:              b.LotID,
		LicensePlate:       b.LicensePlate,
		SizeClass:          string(b.SizeClass),
		DropOffTime:        b.DropOffTime,
		PickUpTime:         b.PickUpTime,
		TotalDays:          b.TotalDays,
		PricePerDay:        b.PricePerDay,
		BasePrice:          b.BasePrice,
		AddonsTotal:        b.AddonsTotal,
		DiscountAmount:     b.DiscountAmount,
		TotalPrice:         b.TotalPrice,
		Addons:             lines,
		PaymentRedirectURL: redirectURL,
		CreatedAt:          b.CreatedAt,
	}
}
