package mailclient

import "errors"

var (
	// ErrInvalidResponse is returned on an unexpected response from the mail service
	ErrInvalidResponse = errors.New("mailclient: invalid response")

	// ErrInternal is returned on request construction or transport failures
	ErrInternal = errors.New("mailclient: internal error")
)
