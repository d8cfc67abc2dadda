package manage_car

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type CarService interface {
	Create(ctx context.Context, c *domain.Car) (*domain.Car, error)
	Update(ctx context.Context, c *domain.Car) (*domain.Car, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
