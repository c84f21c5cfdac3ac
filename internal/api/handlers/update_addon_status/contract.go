package update_addon_status

import "context"

type BookingService interface {
	UpdateAddonStatus(ctx context.Context, reference string, addonID int64, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
