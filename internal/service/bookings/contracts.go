package bookings

import (
	"context"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	"github.com/arnakr/AeroPark-Service/internal/service/notifications"
)

// BookingRepository booking persistence interface
type BookingRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByLotWithFilter(ctx context.Context, filter domain.LotBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// AddonRepository addon persistence interface
type AddonRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.BookingAddon, error)
	UpdateStatus(ctx context.Context, bookingID, addonID int64, status domain.AddonStatus) error
}

// LotRepository lot persistence interface
type LotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lot, error)
}

// Notifier dispatches lifecycle emails, best-effort
type Notifier interface {
	Dispatch(ctx context.Context, event notifications.Event, booking *domain.Booking, lotName string)
}

// TransactionManager transaction control interface
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
