package models

import (
	"errors"
	"time"

	"github.com/arnakr/AeroPark-Service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest request to cancel a booking
type CancelBookingRequest struct {
	UserID int64  `json:"userId"`
	Reason string `json:"reason"`
}

// GetUserBookingsRequest request for a user's booking history
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetLotBookingsRequest request for the operator console booking list
type GetLotBookingsRequest struct {
	LotID           int64      `json:"lotId"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into the repository filter
func (r *GetLotBookingsRequest) ToDomainFilter() (domain.LotBookingsFilter, error) {
	filter := domain.LotBookingsFilter{
		LotID:           r.LotID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// AddonResponse one add-on row on a booking
type AddonResponse struct {
	ID          int64  `json:"id"`
	ServiceID   int64  `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Price       int64  `json:"price"`
	Status      string `json:"status"`
}

// BookingResponse booking payload returned to clients
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`

	UserID     *int64  `json:"userId,omitempty"`
	GuestName  *string `json:"guestName,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`

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

	ArrivalFlight   *string `json:"arrivalFlight,omitempty"`
	DepartureFlight *string `json:"departureFlight,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Locale          string  `json:"locale"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	Addons []AddonResponse `json:"addons"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse list payload
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts a domain booking (and its addons) into a DTO
func FromDomainBooking(b *domain.Booking, addons []*domain.BookingAddon) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		Reference:       b.Reference,
		Status:          string(b.Status),
		UserID:          b.UserID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		LotID:           b.LotID,
		LicensePlate:    b.LicensePlate,
		SizeClass:       string(b.SizeClass),
		DropOffTime:     b.DropOffTime,
		PickUpTime:      b.PickUpTime,
		TotalDays:       b.TotalDays,
		PricePerDay:     b.PricePerDay,
		BasePrice:       b.BasePrice,
		AddonsTotal:     b.AddonsTotal,
		DiscountAmount:  b.DiscountAmount,
		TotalPrice:      b.TotalPrice,
		ArrivalFlight:   b.ArrivalFlight,
		DepartureFlight: b.DepartureFlight,
		Notes:           b.Notes,
		Locale:          b.Locale,

		CancellationReason: b.CancellationReason,

		Addons: make([]AddonResponse, 0, len(addons)),

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	for _, a := range addons {
		resp.Addons = append(resp.Addons, AddonResponse{
			ID:          a.ID,
			ServiceID:   a.ServiceID,
			ServiceName: a.ServiceName,
			Price:       a.Price,
			Status:      string(a.Status),
		})
	}

	return resp
}

// FromDomainBookingList converts a list of bookings without addon rows
// (list endpoints do not expand addons)
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if br := FromDomainBooking(b, nil); br != nil {
			resp.Bookings = append(resp.Bookings, *br)
		}
	}

	return resp
}

// ToDomainBookingStatus converts and validates a status string
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.AllStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
