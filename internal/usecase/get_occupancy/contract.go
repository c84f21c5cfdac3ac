package get_occupancy

import (
	"context"
	"time"

	"github.com/arnakr/AeroPark-Service/internal/domain"
)

// BookingRepository booking persistence interface
type BookingRepository interface {
	GetOverlappingWindow(ctx context.Context, lotID int64, from, to time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// LotRepository lot persistence interface
type LotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lot, error)
}

// TimeProvider time source, swappable in tests
type TimeProvider interface {
	Now() time.Time
}

// Logger logging interface
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
