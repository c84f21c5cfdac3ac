package get_occupancy

import "errors"

var (
	// ErrLotNotFound is returned when the lot does not exist
	ErrLotNotFound = errors.New("get_occupancy: lot not found")

	// ErrInvalidInput is returned for malformed input
	ErrInvalidInput = errors.New("get_occupancy: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("get_occupancy: internal error")
)
