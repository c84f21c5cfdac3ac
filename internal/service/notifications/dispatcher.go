package notifications

import (
	"context"
	"time"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	"github.com/arnakr/AeroPark-Service/internal/integrations/mailclient"
)

const timestampFormat = "2006-01-02 15:04"

// Dispatcher renders lifecycle emails and hands them to the mail service.
// Dispatch is fire-and-forget: every failure is logged and dropped, and a
// failed send never affects the booking transition that triggered it.
type Dispatcher struct {
	mail      MailSender
	directory UserDirectoryClient
	logger    Logger
}

// NewDispatcher creates a notification dispatcher
func NewDispatcher(mail MailSender, directory UserDirectoryClient, logger Logger) *Dispatcher {
	return &Dispatcher{
		mail:      mail,
		directory: directory,
		logger:    logger,
	}
}

// Dispatch sends the email for one lifecycle event. Always returns nil to
// the caller; use the logs to diagnose delivery problems.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event, booking *domain.Booking, lotName string) {
	name, email, err := d.resolveRecipient(ctx, booking)
	if err != nil {
		d.logger.Error("Dispatch: no recipient for booking=%s event=%s: %v", booking.Reference, event, err)
		return
	}

	locale := booking.Locale
	if locale == "" {
		locale = domain.DefaultLocale
	}

	subject, body, err := render(event, locale, templateData{
		Name:        name,
		Reference:   booking.Reference,
		LotName:     lotName,
		DropOff:     booking.DropOffTime.Format(timestampFormat),
		PickUp:      booking.PickUpTime.Format(timestampFormat),
		TotalDays:   booking.TotalDays,
		TotalPrice:  booking.TotalPrice,
		PlateNumber: booking.LicensePlate,
	})
	if err != nil {
		d.logger.Error("Dispatch: render failed for booking=%s event=%s: %v", booking.Reference, event, err)
		return
	}

	msg := &mailclient.Message{
		To:      email,
		Subject: subject,
		Body:    body,
	}

	// Bound the send so a slow mail service cannot hold the request open
	sendCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.mail.Send(sendCtx, msg); err != nil {
		d.logger.Error("Dispatch: send failed for booking=%s event=%s to=%s: %v",
			booking.Reference, event, email, err)
		return
	}

	d.logger.Info("Dispatch: sent %s mail for booking=%s to=%s", event, booking.Reference, email)
}

// resolveRecipient picks the guest contact or looks the user up in the
// account directory
func (d *Dispatcher) resolveRecipient(ctx context.Context, booking *domain.Booking) (name, email string, err error) {
	if booking.IsGuest() {
		if booking.GuestEmail == nil || *booking.GuestEmail == "" {
			return "", "", ErrNoRecipient
		}
		if booking.GuestName != nil {
			name = *booking.GuestName
		}
		return name, *booking.GuestEmail, nil
	}

	contact, err := d.directory.GetContact(ctx, *booking.UserID)
	if err != nil {
		return "", "", err
	}
	if contact.Email == "" {
		return "", "", ErrNoRecipient
	}

	return contact.Name, contact.Email, nil
}
