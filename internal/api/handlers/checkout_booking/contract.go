package checkout_booking

import "context"

type BookingService interface {
	CheckOut(ctx context.Context, reference string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
