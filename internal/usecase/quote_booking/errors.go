package quote_booking

import "errors"

var (
	// ErrLotNotFound is returned when the lot does not exist
	ErrLotNotFound = errors.New("quote_booking: lot not found")

	// ErrServiceNotFound is returned when a selected service does not
	// exist or is disabled
	ErrServiceNotFound = errors.New("quote_booking: service not found")

	// ErrServiceNotForSize is returned when a selected service has no
	// price for the vehicle's size class
	ErrServiceNotForSize = errors.New("quote_booking: service not offered for this vehicle size")

	// ErrSizeNotSupported is returned when the lot has no rate for the
	// vehicle's size class
	ErrSizeNotSupported = errors.New("quote_booking: size class not supported at this lot")

	// ErrInvalidDateRange is returned when pick-up is not after drop-off
	ErrInvalidDateRange = errors.New("quote_booking: pick-up must be after drop-off")

	// ErrInvalidInput is returned for malformed input
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("quote_booking: internal error")
)
