package quote_booking

import (
	"time"

	quoteBooking "github.com/arnakr/AeroPark-Service/internal/usecase/quote_booking"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	LotID       int64     `json:"lotId"`
	SizeClass   string    `json:"sizeClass"`
	DropOffTime time.Time `json:"dropOffTime"`
	PickUpTime  time.Time `json:"pickUpTime"`
	ServiceIDs  []int64   `json:"serviceIds,omitempty"`
}

// AddonQuoteResponse one priced add-on line
type AddonQuoteResponse struct {
	ServiceID   int64  `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Price       int64  `json:"price"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	LotID     int64  `json:"lotId"`
	LotName   string `json:"lotName"`
	SizeClass string `json:"sizeClass"`

	TotalDays   int   `json:"totalDays"`
	PricePerDay int64 `json:"pricePerDay"`
	BasePrice   int64 `json:"basePrice"`

	Addons      []AddonQuoteResponse `json:"addons"`
	AddonsTotal int64                `json:"addonsTotal"`

	TotalPrice int64 `json:"totalPrice"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *QuoteRequest) ToUseCaseRequest() *quoteBooking.Request {
	return &quoteBooking.Request{
		LotID:       r.LotID,
		SizeClass:   r.SizeClass,
		DropOffTime: r.DropOffTime,
		PickUpTime:  r.PickUpTime,
		ServiceIDs:  r.ServiceIDs,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	addons := make([]AddonQuoteResponse, 0, len(resp.Addons))
	for _, a := range resp.Addons {
		addons = append(addons, AddonQuoteResponse{
			ServiceID:   a.ServiceID,
			ServiceName: a.ServiceName,
			Price:       a.Price,
		})
	}

	return &QuoteResponse{
		LotID:       resp.LotID,
		LotName:     resp.LotName,
		SizeClass:   resp.SizeClass,
		TotalDays:   resp.TotalDays,
		PricePerDay: resp.PricePerDay,
		BasePrice:   resp.BasePrice,
		Addons:      addons,
		AddonsTotal: resp.AddonsTotal,
		TotalPrice:  resp.TotalPrice,
	}
}
