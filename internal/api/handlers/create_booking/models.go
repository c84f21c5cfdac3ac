package create_booking

import (
	"time"

	createBooking "github.com/arnakr/AeroPark-Service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestName  *string `json:"guestName,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`

	LotID        int64  `json:"lotId"`
	LicensePlate string `json:"licensePlate"`
	SizeClass    string `json:"sizeClass"`

	DropOffTime time.Time `json:"dropOffTime"` // RFC 3339
	PickUpTime  time.Time `json:"pickUpTime"`

	ServiceIDs     []int64 `json:"serviceIds,omitempty"`
	DiscountAmount int64   `json:"discountAmount,omitempty"`

	ArrivalFlight   *string `json:"arrivalFlight,omitempty"`
	DepartureFlight *string `json:"departureFlight,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Locale          string  `json:"locale,omitempty"`

	ReturnURL string `json:"returnUrl"`
}

// AddonResponse one priced add-on line
type AddonResponse struct {
	ServiceID   int64  `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Price       int64  `json:"price"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`

	LotID        int64  `json:"lotId"`
	LicensePlate string `json:"licensePlate"`
	SizeClass    string `json:"sizeClass"`

	DropOffTime time.Time `json:"dropOffTime"`
	PickUpTime  time.Time `json:"pickUpTime"`
	TotalDays   int       `json:"totalDays"`

	PricePerDay    int64 `json:"pricePerDay"`
	BasePrice      int64 `json:"basePrice"`
	AddonsTotal    int64 `json:"addonsTotal"`
	DiscountAmount int64 `json:"discountAmount"`
	TotalPrice     int64 `json:"totalPrice"`

	Addons []AddonResponse `json:"addons"`

	PaymentRedirectURL string `json:"paymentRedirectUrl"`

	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
// userID comes from the identity headers, not the body.
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:          userID,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		LotID:           r.LotID,
		LicensePlate:    r.LicensePlate,
		SizeClass:       r.SizeClass,
		DropOffTime:     r.DropOffTime,
		PickUpTime:      r.PickUpTime,
		ServiceIDs:      r.ServiceIDs,
		DiscountAmount:  r.DiscountAmount,
		ArrivalFlight:   r.ArrivalFlight,
		DepartureFlight: r.DepartureFlight,
		Notes:           r.Notes,
		Locale:          r.Locale,
		ReturnURL:       r.ReturnURL,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	addons := make([]AddonResponse, 0, len(resp.Addons))
	for _, a := range resp.Addons {
		addons = append(addons, AddonResponse{
			ServiceID:   a.ServiceID,
			ServiceName: a.ServiceName,
			Price:       a.Price,
		})
	}

	return &BookingResponse{
		ID:                 resp.ID,
		Reference:          resp.Reference,
		Status:             resp.Status,
		LotID:              resp.LotID,
		LicensePlate:       resp.LicensePlate,
		SizeClass:          resp.SizeClass,
		DropOffTime:        resp.DropOffTime,
		PickUpTime:         resp.PickUpTime,
		TotalDays:          resp.TotalDays,
		PricePerDay:        resp.PricePerDay,
		BasePrice:          resp.BasePrice,
		AddonsTotal:        resp.AddonsTotal,
		DiscountAmount:     resp.DiscountAmount,
		TotalPrice:         resp.TotalPrice,
		Addons:             addons,
		PaymentRedirectURL: resp.PaymentRedirectURL,
		CreatedAt:          resp.CreatedAt,
	}
}
