package domain

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxFlightNumberLength       = 10
	MaxLicensePlateLength       = 12
)

// Supported notification locales
const (
	LocaleEN      = "en"
	LocaleIS      = "is"
	DefaultLocale = LocaleEN
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses statuses that occupy a parking spot.
// Used when counting occupancy: pending bookings are unpaid and do not
// reserve a spot, terminal bookings have left or never arrived.
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCheckedIn,
	StatusInProgress,
	StatusReady,
}

// InactiveStatuses statuses excluded from operator lists by default
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// AllStatuses every legal booking status
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusInProgress,
	StatusReady,
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}
