package create_booking

import (
	"time"
)

// Request inputs for creating a booking. Guests leave UserID nil and fill
// the contact fields instead.
type Request struct {
	UserID     *int64
	GuestName  *string
	GuestEmail *string
	GuestPhone *string

	LotID        int64
	LicensePlate string
	SizeClass    string

	DropOffTime time.Time
	PickUpTime  time.Time

	ServiceIDs     []int64 // selected add-on services
	DiscountAmount int64   // resolved upstream (promo/loyalty), whole ISK

	ArrivalFlight   *string
	DepartureFlight *string
	Notes           *string
	Locale          string

	ReturnURL string // where the payment provider sends the customer back
}

// AddonLine one priced add-on on the created booking
type AddonLine struct {
	ServiceID   int64
	ServiceName string
	Price       int64
}

// Response the created booking plus the payment redirect
type Response struct {
	ID        int64
	Reference string
	Status    string

	LotID        int64
	LicensePlate string
	SizeClass    string

	DropOffTime time.Time
	PickUpTime  time.Time
	TotalDays   int

	PricePerDay    int64
	BasePrice      int64
	AddonsTotal    int64
	DiscountAmount int64
	TotalPrice     int64

	Addons []AddonLine

	PaymentRedirectURL string

	CreatedAt time.Time
}
