package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	bookingRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/booking"
	catalogRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/catalog"
	lotRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/lot"
	"github.com/arnakr/AeroPark-Service/internal/integrations/payments"
	"github.com/arnakr/AeroPark-Service/internal/service/notifications"
	"github.com/arnakr/AeroPark-Service/internal/usecase/quote_booking"
	"github.com/arnakr/AeroPark-Service/pkg/ptr"
)

type fakeBookings struct {
	created   []*domain.Booking
	failFirst bool // first Create returns a duplicate-reference error
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.failFirst && len(f.created) == 0 {
		f.created = append(f.created, nil)
		return nil, bookingRepo.ErrDuplicateReference
	}
	stored := *b
	stored.ID = int64(len(f.created) + 1)
	stored.CreatedAt = time.Now()
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeBookings) last() *domain.Booking {
	return f.created[len(f.created)-1]
}

type fakeAddons struct {
	bookingID int64
	addons    []*domain.BookingAddon
}

func (f *fakeAddons) CreateForBooking(_ context.Context, bookingID int64, addons []*domain.BookingAddon) error {
	f.bookingID = bookingID
	f.addons = addons
	return nil
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

type fakePayments struct {
	requests []*payments.SessionRequest
	err      error
}

func (f *fakePayments) CreateSession(_ context.Context, req *payments.SessionRequest) (*payments.Session, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &payments.Session{SessionID: "sess-1", RedirectURL: "https://pay.example/sess-1"}, nil
}

type fakeNotifier struct {
	events []notifications.Event
}

func (f *fakeNotifier) Dispatch(_ context.Context, event notifications.Event, _ *domain.Booking, _ string) {
	f.events = append(f.events, event)
}

type fakeTx struct{}

func (fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testLot() *domain.Lot {
	return &domain.Lot{
		ID:       1,
		Name:     "Terminal East",
		Capacity: 100,
		BaseFee:  1000,
		DailyRates: map[domain.SizeClass]int64{
			domain.SizeSedan: 2600,
			domain.SizeSUV:   3200,
		},
	}
}

func washService() *domain.Service {
	return &domain.Service{
		ID:         7,
		CategoryID: 1,
		Name:       "Exterior wash",
		Active:     true,
		Prices: map[domain.SizeClass]int64{
			domain.SizeSedan: 4500,
		},
	}
}

func newTestUsecase(bookings *fakeBookings, catalog *fakeCatalog, pay *fakePayments, notifier *fakeNotifier) (*Usecase, *fakeAddons) {
	addons := &fakeAddons{}
	return NewUsecase(
		bookings,
		addons,
		&fakeLots{lot: testLot()},
		catalog,
		pay,
		notifier,
		fakeTx{},
		fixedTime{t: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	), addons
}

func validRequest() *Request {
	return &Request{
		GuestName:    ptr.Ptr("Jon Jonsson"),
		GuestEmail:   ptr.Ptr("jon@example.is"),
		LotID:        1,
		LicensePlate: "AB123",
		SizeClass:    "sedan",
		DropOffTime:  time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		PickUpTime:   time.Date(2026, 9, 4, 18, 30, 0, 0, time.UTC),
		ReturnURL:    "https://app.example/return",
	}
}

func TestHandle_PricesStayAndAddons(t *testing.T) {
	bookings := &fakeBookings{}
	pay := &fakePayments{}
	notifier := &fakeNotifier{}
	uc, addons := newTestUsecase(bookings, &fakeCatalog{services: map[int64]*domain.Service{7: washService()}}, pay, notifier)

	req := validRequest()
	req.ServiceIDs = []int64{7}
	req.DiscountAmount = 500

	resp, err := uc.Handle(context.Background(), req)
	require.NoError(t, err)

	// 3 calendar days at 2600 plus the 1000 base fee
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, int64(8800), resp.BasePrice)
	assert.Equal(t, int64(4500), resp.AddonsTotal)
	assert.Equal(t, int64(500), resp.DiscountAmount)
	assert.Equal(t, int64(8800+4500-500), resp.TotalPrice)

	created := bookings.last()
	assert.True(t, created.PriceConsistent())
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, created.ID, addons.bookingID)
	require.Len(t, addons.addons, 1)
	assert.Equal(t, domain.AddonPending, addons.addons[0].Status)
	assert.Equal(t, "Exterior wash", addons.addons[0].ServiceName)

	require.Len(t, pay.requests, 1)
	assert.Equal(t, resp.TotalPrice, pay.requests[0].Amount)
	assert.Equal(t, "ISK", pay.requests[0].Currency)
	assert.Equal(t, "https://pay.example/sess-1", resp.PaymentRedirectURL)

	assert.Equal(t, []notifications.Event{notifications.EventBookingReceived}, notifier.events)
}

func TestHandle_QuoteAndCreateAgreeOnPrice(t *testing.T) {
	catalog := &fakeCatalog{services: map[int64]*domain.Service{7: washService()}}
	uc, _ := newTestUsecase(&fakeBookings{}, catalog, &fakePayments{}, &fakeNotifier{})
	quoter := quote_booking.NewUsecase(&fakeLots{lot: testLot()}, catalog, nopLogger{})

	req := validRequest()
	req.ServiceIDs = []int64{7}

	created, err := uc.Handle(context.Background(), req)
	require.NoError(t, err)

	quoted, err := quoter.Handle(context.Background(), &quote_booking.Request{
		LotID:       req.LotID,
		SizeClass:   req.SizeClass,
		DropOffTime: req.DropOffTime,
		PickUpTime:  req.PickUpTime,
		ServiceIDs:  req.ServiceIDs,
	})
	require.NoError(t, err)

	assert.Equal(t, quoted.TotalDays, created.TotalDays)
	assert.Equal(t, quoted.BasePrice, created.BasePrice)
	assert.Equal(t, quoted.AddonsTotal, created.AddonsTotal)
	assert.Equal(t, quoted.TotalPrice, created.TotalPrice)
}

func TestHandle_ReferenceCollisionRetries(t *testing.T) {
	bookings := &fakeBookings{failFirst: true}
	uc, _ := newTestUsecase(bookings, &fakeCatalog{}, &fakePayments{}, &fakeNotifier{})

	resp, err := uc.Handle(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Reference)
	assert.Len(t, bookings.created, 2)
}

func TestHandle_PaymentFailureKeepsBooking(t *testing.T) {
	bookings := &fakeBookings{}
	pay := &fakePayments{err: payments.ErrSessionRejected}
	notifier := &fakeNotifier{}
	uc, _ := newTestUsecase(bookings, &fakeCatalog{}, pay, notifier)

	_, err := uc.Handle(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPaymentSession)
	assert.Len(t, bookings.created, 1, "booking row must survive the payment failure")
	assert.Empty(t, notifier.events, "no received mail before a payment session exists")
}

func TestHandle_InactiveServiceRejected(t *testing.T) {
	svc := washService()
	svc.Active = false
	uc, _ := newTestUsecase(&fakeBookings{}, &fakeCatalog{services: map[int64]*domain.Service{7: svc}}, &fakePayments{}, &fakeNotifier{})

	req := validRequest()
	req.ServiceIDs = []int64{7}

	_, err := uc.Handle(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestHandle_ServiceWithoutSizePriceRejected(t *testing.T) {
	uc, _ := newTestUsecase(&fakeBookings{}, &fakeCatalog{services: map[int64]*domain.Service{7: washService()}}, &fakePayments{}, &fakeNotifier{})

	req := validRequest()
	req.SizeClass = "suv" // lot has an suv rate but the wash does not
	req.ServiceIDs = []int64{7}

	_, err := uc.Handle(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotForSize)
}

func TestHandle_SizeClassWithoutRateRejected(t *testing.T) {
	uc, _ := newTestUsecase(&fakeBookings{}, &fakeCatalog{}, &fakePayments{}, &fakeNotifier{})

	req := validRequest()
	req.SizeClass = "van"

	_, err := uc.Handle(context.Background(), req)

	assert.ErrorIs(t, err, ErrSizeNotSupported)
}

func TestHandle_DiscountLargerThanTotalRejected(t *testing.T) {
	uc, _ := newTestUsecase(&fakeBookings{}, &fakeCatalog{}, &fakePayments{}, &fakeNotifier{})

	req := validRequest()
	req.DiscountAmount = 1_000_000

	_, err := uc.Handle(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHandle_GuestWithoutContactRejected(t *testing.T) {
	uc, _ := newTestUsecase(&fakeBookings{}, &fakeCatalog{}, &fakePayments{}, &fakeNotifier{})

	req := validRequest()
	req.GuestEmail = nil

	_, err := uc.Handle(context.Background(), req)

	assert.ErrorIs(t, err, ErrGuestContactRequired)
}

func TestHandle_PickUpBeforeDropOffRejected(t *testing.T) {
	uc, _ := newTestUsecase(&fakeBookings{}, &fakeCatalog{}, &fakePayments{}, &fakeNotifier{})

	req := validRequest()
	req.PickUpTime = req.DropOffTime.Add(-time.Hour)

	_, err := uc.Handle(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestHandle_DropOffInPastRejected(t *testing.T) {
	uc, _ := newTestUsecase(&fakeBookings{}, &fakeCatalog{}, &fakePayments{}, &fakeNotifier{})

	req := validRequest()
	req.DropOffTime = time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	_, err := uc.Handle(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestHandle_UnknownLotRejected(t *testing.T) {
	uc, _ := newTestUsecase(&fakeBookings{}, &fakeCatalog{}, &fakePayments{}, &fakeNotifier{})

	req := validRequest()
	req.LotID = 99

	_, err := uc.Handle(context.Background(), req)

	assert.ErrorIs(t, err, ErrLotNotFound)
}

func TestHandle_RegisteredUserSkipsGuestChecks(t *testing.T) {
	bookings := &fakeBookings{}
	uc, _ := newTestUsecase(bookings, &fakeCatalog{}, &fakePayments{}, &fakeNotifier{})

	req := validRequest()
	req.UserID = ptr.Ptr(int64(42))
	req.GuestName = nil
	req.GuestEmail = nil

	resp, err := uc.Handle(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, bookings.last().UserID)
	assert.Equal(t, int64(42), *bookings.last().UserID)
	assert.Equal(t, "pending", resp.Status)
}
