package update_service_prices

import (
	"context"

	"github.com/arnakr/AeroPark-Service/internal/service/catalog/models"
)

type CatalogService interface {
	UpdatePrices(ctx context.Context, serviceID int64, req *models.UpdatePricesRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
