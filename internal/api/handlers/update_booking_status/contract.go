package update_booking_status

import "context"

type BookingService interface {
	Advance(ctx context.Context, reference string, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
