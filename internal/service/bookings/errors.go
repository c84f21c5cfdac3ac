package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAddonNotFound is returned when the addon does not exist on the booking
	ErrAddonNotFound = errors.New("bookings: addon not found")

	// ErrAccessDenied is returned when the caller may not touch the booking
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrIllegalTransition is returned when the requested status change is
	// not an edge of the lifecycle graph
	ErrIllegalTransition = errors.New("bookings: illegal status transition")

	// ErrAddonsIncomplete is returned when check-out is attempted while an
	// addon is still pending or in progress
	ErrAddonsIncomplete = errors.New("bookings: add-ons not completed")

	// ErrCannotCancel is returned when the booking can no longer be cancelled
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrTerminalBooking is returned when mutating a booking in a final state
	ErrTerminalBooking = errors.New("bookings: booking is in a terminal state")

	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("bookings: invalid status")

	// ErrInvalidInput is returned for malformed input
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("bookings: internal error")
)
