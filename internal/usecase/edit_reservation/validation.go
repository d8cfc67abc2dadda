package edit_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.NewCarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.NewStartDate.IsZero() || req.NewEndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if !req.Actor.Admin && req.Actor.CustomerID <= 0 {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	return nil
}

// buildDateRange строит новый диапазон аренды с проверкой порядка дат
// и длительности
func buildDateRange(req *Request) (domain.DateRange, error) {
	rng, err := domain.NewDateRange(req.NewStartDate, req.NewEndDate)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			return domain.DateRange{}, ErrInvalidRange
		}
		return domain.DateRange{}, fmt.Errorf("%w: build date range: %v", ErrInternal, err)
	}

	if rng.Days() > domain.MaxRentalDays {
		return domain.DateRange{}, fmt.Errorf("%w: rental cannot exceed %d days", ErrInvalidInput, domain.MaxRentalDays)
	}

	return rng, nil
}
