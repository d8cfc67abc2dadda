package create_reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	return nil
}

// buildDateRange строит диапазон аренды с проверкой порядка дат
// и длительности
func buildDateRange(req *Request) (domain.DateRange, error) {
	rng, err := domain.NewDateRange(req.StartDate, req.EndDate)
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

// validateNotPast проверяет, что первый день аренды не в прошлом
func validateNotPast(rng domain.DateRange, now time.Time) error {
	if rng.StartsBefore(now) {
		return ErrPastDate
	}
	return nil
}
