package quote_booking

import "time"

// Request inputs for pricing a stay without creating anything
type Request struct {
	LotID       int64
	SizeClass   string
	DropOffTime time.Time
	PickUpTime  time.Time
	ServiceIDs  []int64
}

// AddonQuote one priced add-on line
type AddonQuote struct {
	ServiceID   int64
	ServiceName string
	Price       int64
}

// Response the priced stay
type Response struct {
	LotID     int64
	LotName   string
	SizeClass string

	TotalDays   int
	PricePerDay int64
	BasePrice   int64

	Addons      []AddonQuote
	AddonsTotal int64

	TotalPrice int64
}
