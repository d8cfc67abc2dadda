package export_reservations

import (
	"context"

	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

type ReservationService interface {
	GetReport(ctx context.Context) ([]*reservationRepo.ReportRow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
