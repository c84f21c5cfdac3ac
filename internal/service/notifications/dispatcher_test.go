package notifications

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	"github.com/arnakr/AeroPark-Service/internal/integrations/mailclient"
	"github.com/arnakr/AeroPark-Service/internal/integrations/userdirectory"
	"github.com/arnakr/AeroPark-Service/pkg/ptr"
)

type fakeMailSender struct {
	sent []*mailclient.Message
	err  error
}

func (f *fakeMailSender) Send(_ context.Context, msg *mailclient.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeDirectory struct {
	contact *userdirectory.Contact
	err     error
}

func (f *fakeDirectory) GetContact(_ context.Context, _ int64) (*userdirectory.Contact, error) {
	return f.contact, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func guestBooking(locale string) *domain.Booking {
	return &domain.Booking{
		Reference:    "AP-REFCODEX",
		GuestName:    ptr.Ptr("Jon Jonsson"),
		GuestEmail:   ptr.Ptr("jon@example.is"),
		LicensePlate: "AB123",
		Locale:       locale,
		DropOffTime:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		PickUpTime:   time.Date(2026, 9, 4, 14, 0, 0, 0, time.UTC),
		TotalDays:    3,
		TotalPrice:   8800,
	}
}

func TestDispatch_GuestBookingUsesGuestContact(t *testing.T) {
	mail := &fakeMailSender{}
	d := NewDispatcher(mail, &fakeDirectory{}, nopLogger{})

	d.Dispatch(context.Background(), EventBookingConfirmed, guestBooking(domain.LocaleEN), "Terminal East")

	require.Len(t, mail.sent, 1)
	msg := mail.sent[0]
	assert.Equal(t, "jon@example.is", msg.To)
	assert.Contains(t, msg.Subject, "AP-REFCODEX")
	assert.Contains(t, msg.Body, "Jon Jonsson")
	assert.Contains(t, msg.Body, "Terminal East")
}

func TestDispatch_RegisteredUserLooksUpDirectory(t *testing.T) {
	mail := &fakeMailSender{}
	directory := &fakeDirectory{contact: &userdirectory.Contact{
		Name:  "Anna",
		Email: "anna@example.is",
	}}
	d := NewDispatcher(mail, directory, nopLogger{})

	userID := int64(5)
	booking := guestBooking(domain.LocaleEN)
	booking.UserID = &userID
	booking.GuestName = nil
	booking.GuestEmail = nil

	d.Dispatch(context.Background(), EventVehicleReady, booking, "Terminal East")

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "anna@example.is", mail.sent[0].To)
}

func TestDispatch_IcelandicLocale(t *testing.T) {
	mail := &fakeMailSender{}
	d := NewDispatcher(mail, &fakeDirectory{}, nopLogger{})

	d.Dispatch(context.Background(), EventBookingConfirmed, guestBooking(domain.LocaleIS), "Terminal East")

	require.Len(t, mail.sent, 1)
	assert.True(t, strings.HasPrefix(mail.sent[0].Subject, "Bókun"), "subject %q", mail.sent[0].Subject)
}

func TestDispatch_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	mail := &fakeMailSender{}
	d := NewDispatcher(mail, &fakeDirectory{}, nopLogger{})

	d.Dispatch(context.Background(), EventBookingConfirmed, guestBooking("de"), "Terminal East")

	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0].Body, "Hello")
}

func TestDispatch_SendFailureIsSwallowed(t *testing.T) {
	mail := &fakeMailSender{err: errors.New("smtp down")}
	d := NewDispatcher(mail, &fakeDirectory{}, nopLogger{})

	// Must not panic or propagate anything
	d.Dispatch(context.Background(), EventBookingConfirmed, guestBooking(domain.LocaleEN), "Terminal East")

	assert.Empty(t, mail.sent)
}

func TestDispatch_DirectoryFailureIsSwallowed(t *testing.T) {
	mail := &fakeMailSender{}
	directory := &fakeDirectory{err: errors.New("directory unavailable")}
	d := NewDispatcher(mail, directory, nopLogger{})

	userID := int64(5)
	booking := guestBooking(domain.LocaleEN)
	booking.UserID = &userID

	d.Dispatch(context.Background(), EventCheckedIn, booking, "Terminal East")

	assert.Empty(t, mail.sent)
}

func TestRender_AllEventsHaveBothLocales(t *testing.T) {
	events := []Event{
		EventBookingReceived,
		EventBookingConfirmed,
		EventCheckedIn,
		EventVehicleReady,
		EventCheckedOut,
		EventCancelled,
		EventNoShow,
	}

	data := templateData{
		Name:        "Jon",
		Reference:   "AP-REFCODEX",
		LotName:     "Terminal East",
		PlateNumber: "AB123",
	}

	for _, locale := range []string{domain.LocaleEN, domain.LocaleIS} {
		for _, event := range events {
			subject, body, err := render(event, locale, data)
			require.NoError(t, err, "event=%s locale=%s", event, locale)
			assert.NotEmpty(t, subject)
			assert.NotEmpty(t, body)
			assert.NotContains(t, subject, "{{", "unreplaced placeholder in subject for %s/%s", event, locale)
		}
	}
}
