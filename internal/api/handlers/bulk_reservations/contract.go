package bulk_reservations

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

type ReservationService interface {
	BulkMarkPaid(ctx context.Context, ids []int64) *models.BulkResult
	BulkDelete(ctx context.Context, ids []int64) *models.BulkResult
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
