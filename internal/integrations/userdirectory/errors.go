package userdirectory

import "errors"

var (
	// ErrUserNotFound is returned when the user does not exist
	ErrUserNotFound = errors.New("userdirectory: user not found")

	// ErrInvalidResponse is returned on an unexpected response from the directory
	ErrInvalidResponse = errors.New("userdirectory: invalid response")

	// ErrInternal is returned on request construction or transport failures
	ErrInternal = errors.New("userdirectory: internal error")
)
