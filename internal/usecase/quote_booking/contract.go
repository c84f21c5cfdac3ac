package quote_booking

import (
	"context"

	"github.com/arnakr/AeroPark-Service/internal/domain"
)

// LotRepository lot persistence interface
type LotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lot, error)
}

// CatalogRepository catalog persistence interface
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger logging interface
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
