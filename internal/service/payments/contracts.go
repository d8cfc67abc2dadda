package payments

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalRepository интерфейс репозитория rental records
type RentalRepository interface {
	Create(ctx context.Context, reservationID int64) (*domain.RentalRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.RentalRecord, error)
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.RentalRecord, error)
	MarkPaid(ctx context.Context, rentalID int64) error
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetPaymentsByRentalID(ctx context.Context, rentalID int64) ([]*domain.Payment, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
