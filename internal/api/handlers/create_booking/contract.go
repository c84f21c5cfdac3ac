package create_booking

import (
	"context"

	createBooking "github.com/arnakr/AeroPark-Service/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Handle(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
