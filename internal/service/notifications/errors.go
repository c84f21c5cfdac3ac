package notifications

import "errors"

var (
	// ErrUnknownEvent is returned when no template exists for an event
	ErrUnknownEvent = errors.New("notifications: unknown event")

	// ErrNoRecipient is returned when no email address can be resolved
	// for the booking
	ErrNoRecipient = errors.New("notifications: no recipient address")
)
