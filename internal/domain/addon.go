package domain

import "time"

// AddonStatus represents the status of a booked add-on service.
// It advances independently of the parent booking and gates check-out:
// a booking cannot check out while an addon is pending or in progress.
type AddonStatus string

const (
	AddonPending    AddonStatus = "pending"
	AddonInProgress AddonStatus = "in_progress"
	AddonCompleted  AddonStatus = "completed"
	AddonSkipped    AddonStatus = "skipped"
)

// ValidAddonStatus reports whether s is a known addon status
func ValidAddonStatus(s AddonStatus) bool {
	switch s {
	case AddonPending, AddonInProgress, AddonCompleted, AddonSkipped:
		return true
	}
	return false
}

// BookingAddon a priced extra attached to a booking
type BookingAddon struct {
	ID        int64
	BookingID int64
	ServiceID int64

	// Denormalized for history: catalog edits must not rewrite old bookings
	ServiceName string
	Price       int64

	Status    AddonStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true while the addon still blocks check-out
func (a *BookingAddon) IsOpen() bool {
	return a.Status == AddonPending || a.Status == AddonInProgress
}

// AnyAddonOpen returns true if any addon in the list still blocks check-out
func AnyAddonOpen(addons []*BookingAddon) bool {
	for _, a := range addons {
		if a.IsOpen() {
			return true
		}
	}
	return false
}
