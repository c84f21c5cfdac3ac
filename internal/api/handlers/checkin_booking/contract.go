package checkin_booking

import "context"

type BookingService interface {
	CheckIn(ctx context.Context, reference string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
