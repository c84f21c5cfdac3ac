package get_lot_bookings

import (
	"context"

	"github.com/arnakr/AeroPark-Service/internal/service/bookings/models"
)

type BookingService interface {
	GetLotBookings(ctx context.Context, req *models.GetLotBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
