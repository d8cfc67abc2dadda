package list_cars

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type CarService interface {
	List(ctx context.Context, status *domain.CarStatus) ([]*domain.Car, error)
	Get(ctx context.Context, id int64) (*domain.Car, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
