package mark_paid

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type PaymentService interface {
	MarkPaid(ctx context.Context, rentalID int64) error
	RecordPayment(ctx context.Context, rentalID int64, amount float64, method domain.PaymentMethod) (*domain.Payment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
