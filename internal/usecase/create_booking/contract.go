package create_booking

import (
	"context"
	"time"

	"github.com/arnakr/AeroPark-Service/internal/domain"
	"github.com/arnakr/AeroPark-Service/internal/integrations/payments"
	"github.com/arnakr/AeroPark-Service/internal/service/notifications"
)

// BookingRepository booking persistence interface
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AddonRepository addon persistence interface
type AddonRepository interface {
	CreateForBooking(ctx context.Context, bookingID int64, addons []*domain.BookingAddon) error
}

// LotRepository lot persistence interface
type LotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lot, error)
}

// CatalogRepository catalog persistence interface
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// PaymentClient interface for the payment provider
type PaymentClient interface {
	CreateSession(ctx context.Context, req *payments.SessionRequest) (*payments.Session, error)
}

// Notifier dispatches lifecycle emails, best-effort
type Notifier interface {
	Dispatch(ctx context.Context, event notifications.Event, booking *domain.Booking, lotName string)
}

// TransactionManager transaction control interface
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider time source, swappable in tests
type TimeProvider interface {
	Now() time.Time
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
