package check_availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// AvailabilityChecker интерфейс проверки доступности автомобиля
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, carID int64, rng domain.DateRange, excludeReservationID *int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
