package get_booking

import (
	"context"

	"github.com/arnakr/AeroPark-Service/internal/service/bookings"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings/models"
)

type BookingService interface {
	GetByReference(ctx context.Context, reference string, actor bookings.Actor) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
