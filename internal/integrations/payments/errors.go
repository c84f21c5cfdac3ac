package payments

import "errors"

var (
	// ErrSessionRejected is returned when the provider refuses to open a session
	ErrSessionRejected = errors.New("payments: session rejected")

	// ErrInvalidResponse is returned on an unexpected response from the provider
	ErrInvalidResponse = errors.New("payments: invalid response")

	// ErrInternal is returned on request construction or transport failures
	ErrInternal = errors.New("payments: internal error")
)
