package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the catalog service does not exist
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrInvalidInput is returned for malformed input
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("catalog: internal error")
)
