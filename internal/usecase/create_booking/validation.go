package create_booking

import (
	"fmt"
	"time"

	"github.com/arnakr/AeroPark-Service/internal/domain"
)

// validateRequest checks everything that does not need a repository
func validateRequest(req *Request) error {
	if req.LotID <= 0 {
		return fmt.Errorf("%w: lotID must be positive", ErrInvalidInput)
	}

	if req.LicensePlate == "" {
		return fmt.Errorf("%w: licensePlate is required", ErrInvalidInput)
	}
	if len(req.LicensePlate) > domain.MaxLicensePlateLength {
		return fmt.Errorf("%w: licensePlate too long", ErrInvalidInput)
	}

	if !domain.ValidSizeClass(domain.SizeClass(req.SizeClass)) {
		return fmt.Errorf("%w: unknown size class %q", ErrInvalidInput, req.SizeClass)
	}

	if req.DropOffTime.IsZero() || req.PickUpTime.IsZero() {
		return fmt.Errorf("%w: dropOffTime and pickUpTime are required", ErrInvalidInput)
	}
	if !req.PickUpTime.After(req.DropOffTime) {
		return ErrInvalidDateRange
	}

	if req.UserID == nil {
		if emptyStr(req.GuestName) || emptyStr(req.GuestEmail) {
			return ErrGuestContactRequired
		}
	}

	if req.DiscountAmount < 0 {
		return fmt.Errorf("%w: discountAmount must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}
	if flightTooLong(req.ArrivalFlight) || flightTooLong(req.DepartureFlight) {
		return fmt.Errorf("%w: flight number too long", ErrInvalidInput)
	}

	return nil
}

// validateDropOffDate rejects drop-off dates before today
func validateDropOffDate(dropOff, now time.Time) error {
	dateOnly := time.Date(dropOff.Year(), dropOff.Month(), dropOff.Day(), 0, 0, 0, 0, dropOff.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrDateInPast
	}
	return nil
}

func emptyStr(s *string) bool {
	return s == nil || *s == ""
}

func flightTooLong(s *string) bool {
	return s != nil && len(*s) > domain.MaxFlightNumberLength
}
