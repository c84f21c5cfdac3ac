package cancel_booking

import (
	"context"

	"github.com/arnakr/AeroPark-Service/internal/service/bookings"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, reference string, actor bookings.Actor, req *models.CancelBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
