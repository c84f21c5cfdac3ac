package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusInProgress BookingStatus = "in_progress"
	StatusReady      BookingStatus = "ready"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// forwardTransitions is the single source of truth for the booking lifecycle.
// Cancellation and no-show are handled separately: cancellation is only legal
// from pending/confirmed, no-show from any non-terminal state.
var forwardTransitions = map[BookingStatus]BookingStatus{
	StatusPending:    StatusConfirmed,
	StatusConfirmed:  StatusCheckedIn,
	StatusCheckedIn:  StatusInProgress,
	StatusInProgress: StatusReady,
	StatusReady:      StatusCheckedOut,
}

// Booking represents a parking reservation
type Booking struct {
	ID        int64
	Reference string
	Status    BookingStatus

	// Customer: either a registered user or a guest contact
	UserID     *int64
	GuestName  *string
	GuestEmail *string
	GuestPhone *string

	LotID int64

	// Denormalized vehicle data, captured at booking time
	LicensePlate string
	SizeClass    SizeClass

	DropOffTime time.Time
	PickUpTime  time.Time
	TotalDays   int

	// Prices in whole ISK
	PricePerDay    int64
	BasePrice      int64
	AddonsTotal    int64
	DiscountAmount int64
	TotalPrice     int64

	ArrivalFlight   *string
	DepartureFlight *string
	Notes           *string
	Locale          string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the booking is in a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCheckedOut ||
		b.Status == StatusCancelled ||
		b.Status == StatusNoShow
}

// IsActive returns true if the booking occupies a parking spot for
// occupancy purposes
func (b *Booking) IsActive() bool {
	switch b.Status {
	case StatusConfirmed, StatusCheckedIn, StatusInProgress, StatusReady:
		return true
	}
	return false
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsGuest returns true if the booking was made without a registered user
func (b *Booking) IsGuest() bool {
	return b.UserID == nil
}

// CanTransitionTo reports whether moving to target is legal from the
// current status. The addon checkout gate is not part of this check: it is
// enforced by the lifecycle service, which sees the addon rows.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch target {
	case StatusCancelled:
		return b.CanBeCancelled()
	case StatusNoShow:
		return !b.IsTerminal()
	default:
		return forwardTransitions[b.Status] == target
	}
}

// PriceConsistent verifies the pricing invariant
// totalPrice == basePrice + addonsTotal - discountAmount
func (b *Booking) PriceConsistent() bool {
	return b.TotalPrice == b.BasePrice+b.AddonsTotal-b.DiscountAmount
}

// LotBookingsFilter filter for the operator console booking list
type LotBookingsFilter struct {
	LotID           int64
	StartDate       *time.Time // bookings overlapping [StartDate, EndDate), optional
	EndDate         *time.Time
	Status          *BookingStatus // optional
	IncludeInactive bool           // include cancelled / no-show rows
}
