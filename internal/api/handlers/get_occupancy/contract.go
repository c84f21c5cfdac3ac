package get_occupancy

import (
	"context"

	getOccupancy "github.com/arnakr/AeroPark-Service/internal/usecase/get_occupancy"
)

type GetOccupancyUseCase interface {
	Handle(ctx context.Context, req *getOccupancy.Request) (*getOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
