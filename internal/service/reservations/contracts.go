package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	GetReport(ctx context.Context) ([]*reservationRepo.ReportRow, error)
}

// RentalRepository интерфейс репозитория rental records
type RentalRepository interface {
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.RentalRecord, error)
	DeleteByReservationID(ctx context.Context, reservationID int64) error
}

// PaymentTracker интерфейс трекера оплат (internal/service/payments)
type PaymentTracker interface {
	EnsureRentalRecord(ctx context.Context, reservationID int64) (*domain.RentalRecord, error)
	MarkPaid(ctx context.Context, rentalID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
