package cars

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CarRepository интерфейс репозитория автопарка
type CarRepository interface {
	Create(ctx context.Context, c *domain.Car) (*domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context, status *domain.CarStatus) ([]*domain.Car, error)
	Update(ctx context.Context, c *domain.Car) error
	Delete(ctx context.Context, id int64) error
}

// Cache интерфейс кеша списка автопарка. Может быть nil - тогда
// сервис работает напрямую с БД.
type Cache interface {
	Save(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
