package quote_booking

import (
	"context"

	quoteBooking "github.com/arnakr/AeroPark-Service/internal/usecase/quote_booking"
)

type QuoteBookingUseCase interface {
	Handle(ctx context.Context, req *quoteBooking.Request) (*quoteBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
