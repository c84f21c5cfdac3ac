package create_booking

import "errors"

var (
	// ErrLotNotFound is returned when the lot does not exist
	ErrLotNotFound = errors.New("create_booking: lot not found")

	// ErrServiceNotFound is returned when a selected add-on service does
	// not exist or is disabled
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotForSize is returned when a selected service has no
	// price for the vehicle's size class
	ErrServiceNotForSize = errors.New("create_booking: service not offered for this vehicle size")

	// ErrSizeNotSupported is returned when the lot has no rate for the
	// vehicle's size class
	ErrSizeNotSupported = errors.New("create_booking: size class not supported at this lot")

	// ErrInvalidDateRange is returned when pick-up is not after drop-off
	ErrInvalidDateRange = errors.New("create_booking: pick-up must be after drop-off")

	// ErrDateInPast is returned when the drop-off date is in the past
	ErrDateInPast = errors.New("create_booking: drop-off date is in the past")

	// ErrGuestContactRequired is returned when a guest booking is missing
	// name or email
	ErrGuestContactRequired = errors.New("create_booking: guest contact is required")

	// ErrPaymentSession is returned when the payment provider refuses a session
	ErrPaymentSession = errors.New("create_booking: failed to open payment session")

	// ErrInvalidInput is returned for malformed input
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("create_booking: internal error")
)
