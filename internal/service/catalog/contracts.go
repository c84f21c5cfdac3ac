package catalog

import (
	"context"

	"github.com/arnakr/AeroPark-Service/internal/domain"
)

// CatalogRepository catalog persistence interface
type CatalogRepository interface {
	GetCategories(ctx context.Context) ([]*domain.ServiceCategory, error)
	GetServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	ReplacePrices(ctx context.Context, serviceID int64, prices map[domain.SizeClass]int64) error
}

// TransactionManager transaction control interface
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
