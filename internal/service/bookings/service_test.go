package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	bookingRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/booking"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings/models"
	"github.com/arnakr/AeroPark-Service/internal/service/notifications"
	"github.com/arnakr/AeroPark-Service/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking

	updatedStatus *domain.BookingStatus
	cancelled     bool
	cancelReason  string
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	b, ok := f.bookings[reference]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != nil && *b.UserID == userID {
			if status == nil || b.Status == *status {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByLotWithFilter(_ context.Context, filter domain.LotBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.LotID == filter.LotID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updatedStatus = &status
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
		}
	}
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelled = true
	f.cancelReason = reason
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = domain.StatusCancelled
		}
	}
	return nil
}

type fakeAddonRepo struct {
	addons        []*domain.BookingAddon
	updatedStatus *domain.AddonStatus
}

func (f *fakeAddonRepo) GetByBookingID(_ context.Context, bookingID int64) ([]*domain.BookingAddon, error) {
	var out []*domain.BookingAddon
	for _, a := range f.addons {
		if a.BookingID == bookingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAddonRepo) UpdateStatus(_ context.Context, bookingID, addonID int64, status domain.AddonStatus) error {
	f.updatedStatus = &status
	return nil
}

type fakeLotRepo struct {
	lot *domain.Lot
}

func (f *fakeLotRepo) GetByID(_ context.Context, id int64) (*domain.Lot, error) {
	return f.lot, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	events []notifications.Event
}

func (f *fakeNotifier) Dispatch(_ context.Context, event notifications.Event, _ *domain.Booking, _ string) {
	f.events = append(f.events, event)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(b *domain.Booking, addons ...*domain.BookingAddon) (*Service, *fakeBookingRepo, *fakeAddonRepo, *fakeNotifier) {
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{}}
	if b != nil {
		repo.bookings[b.Reference] = b
	}
	addonRepository := &fakeAddonRepo{addons: addons}
	notifier := &fakeNotifier{}
	lots := &fakeLotRepo{lot: &domain.Lot{ID: 1, Name: "Terminal East"}}

	svc := NewService(repo, addonRepository, lots, fakeTxManager{}, notifier, nopLogger{})
	return svc, repo, addonRepository, notifier
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        1,
		Reference: "AP-TESTREFX",
		Status:    status,
		UserID:    ptr.Ptr(int64(42)),
		LotID:     1,
	}
}

func TestConfirm_FromPending(t *testing.T) {
	svc, repo, _, notifier := newTestService(testBooking(domain.StatusPending))

	err := svc.Confirm(context.Background(), "AP-TESTREFX")

	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
	assert.Equal(t, []notifications.Event{notifications.EventBookingConfirmed}, notifier.events)
}

func TestConfirm_AlreadyConfirmedIsIdempotent(t *testing.T) {
	svc, repo, _, notifier := newTestService(testBooking(domain.StatusConfirmed))

	err := svc.Confirm(context.Background(), "AP-TESTREFX")

	require.NoError(t, err)
	assert.Nil(t, repo.updatedStatus, "no status write expected")
	assert.Empty(t, notifier.events, "no duplicate confirmation mail expected")
}

func TestConfirm_CancelledBookingRejected(t *testing.T) {
	svc, _, _, _ := newTestService(testBooking(domain.StatusCancelled))

	err := svc.Confirm(context.Background(), "AP-TESTREFX")

	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCheckOut_BlockedByOpenAddon(t *testing.T) {
	svc, repo, _, notifier := newTestService(
		testBooking(domain.StatusReady),
		&domain.BookingAddon{ID: 10, BookingID: 1, Status: domain.AddonPending},
		&domain.BookingAddon{ID: 11, BookingID: 1, Status: domain.AddonCompleted},
	)

	err := svc.CheckOut(context.Background(), "AP-TESTREFX")

	assert.ErrorIs(t, err, ErrAddonsIncomplete)
	assert.Nil(t, repo.updatedStatus)
	assert.Empty(t, notifier.events)
}

func TestCheckOut_AllAddonsClosed(t *testing.T) {
	svc, repo, _, notifier := newTestService(
		testBooking(domain.StatusReady),
		&domain.BookingAddon{ID: 10, BookingID: 1, Status: domain.AddonCompleted},
		&domain.BookingAddon{ID: 11, BookingID: 1, Status: domain.AddonSkipped},
	)

	err := svc.CheckOut(context.Background(), "AP-TESTREFX")

	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCheckedOut, *repo.updatedStatus)
	assert.Equal(t, []notifications.Event{notifications.EventCheckedOut}, notifier.events)
}

func TestCheckOut_WrongStatus(t *testing.T) {
	svc, _, _, _ := newTestService(testBooking(domain.StatusCheckedIn))

	err := svc.CheckOut(context.Background(), "AP-TESTREFX")

	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCancel_OwnerWhileConfirmed(t *testing.T) {
	svc, repo, _, notifier := newTestService(testBooking(domain.StatusConfirmed))

	err := svc.Cancel(context.Background(), "AP-TESTREFX",
		Actor{UserID: 42}, &models.CancelBookingRequest{Reason: "change of plans"})

	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Equal(t, "change of plans", repo.cancelReason)
	assert.Equal(t, []notifications.Event{notifications.EventCancelled}, notifier.events)
}

func TestCancel_AfterCheckInRejected(t *testing.T) {
	svc, repo, _, _ := newTestService(testBooking(domain.StatusCheckedIn))

	err := svc.Cancel(context.Background(), "AP-TESTREFX",
		Actor{Operator: true}, &models.CancelBookingRequest{})

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.False(t, repo.cancelled)
}

func TestCancel_StrangerDenied(t *testing.T) {
	svc, repo, _, _ := newTestService(testBooking(domain.StatusPending))

	err := svc.Cancel(context.Background(), "AP-TESTREFX",
		Actor{UserID: 7}, &models.CancelBookingRequest{})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.cancelled)
}

func TestAdvance_ServicePipeline(t *testing.T) {
	svc, repo, _, notifier := newTestService(testBooking(domain.StatusCheckedIn))

	require.NoError(t, svc.Advance(context.Background(), "AP-TESTREFX", "in_progress"))
	assert.Equal(t, domain.StatusInProgress, *repo.updatedStatus)
	// Internal progress sends no customer mail
	assert.Empty(t, notifier.events)

	require.NoError(t, svc.Advance(context.Background(), "AP-TESTREFX", "ready"))
	assert.Equal(t, domain.StatusReady, *repo.updatedStatus)
	assert.Equal(t, []notifications.Event{notifications.EventVehicleReady}, notifier.events)
}

func TestAdvance_NoShow(t *testing.T) {
	svc, repo, _, notifier := newTestService(testBooking(domain.StatusConfirmed))

	err := svc.Advance(context.Background(), "AP-TESTREFX", "no_show")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, *repo.updatedStatus)
	assert.Equal(t, []notifications.Event{notifications.EventNoShow}, notifier.events)
}

func TestAdvance_RejectsGuardedTargets(t *testing.T) {
	svc, _, _, _ := newTestService(testBooking(domain.StatusReady))

	// checked_out has the addon gate and its own endpoint
	err := svc.Advance(context.Background(), "AP-TESTREFX", "checked_out")
	assert.ErrorIs(t, err, ErrIllegalTransition)

	err = svc.Advance(context.Background(), "AP-TESTREFX", "sparkling")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateAddonStatus_TerminalBookingRejected(t *testing.T) {
	svc, _, addons, _ := newTestService(
		testBooking(domain.StatusCheckedOut),
		&domain.BookingAddon{ID: 10, BookingID: 1, Status: domain.AddonPending},
	)

	err := svc.UpdateAddonStatus(context.Background(), "AP-TESTREFX", 10, "completed")

	assert.ErrorIs(t, err, ErrTerminalBooking)
	assert.Nil(t, addons.updatedStatus)
}

func TestUpdateAddonStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newTestService(testBooking(domain.StatusCheckedIn))

	err := svc.UpdateAddonStatus(context.Background(), "AP-TESTREFX", 10, "done")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetByReference_AccessControl(t *testing.T) {
	svc, _, _, _ := newTestService(testBooking(domain.StatusConfirmed))

	_, err := svc.GetByReference(context.Background(), "AP-TESTREFX", Actor{UserID: 42})
	assert.NoError(t, err)

	_, err = svc.GetByReference(context.Background(), "AP-TESTREFX", Actor{UserID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByReference(context.Background(), "AP-TESTREFX", Actor{Operator: true})
	assert.NoError(t, err)
}

func TestGetByReference_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService(nil)

	_, err := svc.GetByReference(context.Background(), "AP-MISSINGX", Actor{Operator: true})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
