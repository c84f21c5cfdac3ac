package notifications

// Event a booking lifecycle event that produces a customer email
type Event string

const (
	EventBookingReceived  Event = "booking_received"
	EventBookingConfirmed Event = "booking_confirmed"
	EventCheckedIn        Event = "checked_in"
	EventVehicleReady     Event = "vehicle_ready"
	EventCheckedOut       Event = "checked_out"
	EventCancelled        Event = "cancelled"
	EventNoShow           Event = "no_show"
)
