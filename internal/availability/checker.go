package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ReservationReader интерфейс чтения бронирований автомобиля
type ReservationReader interface {
	GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Checker determines whether a car is free for a candidate date range.
//
// Only the reservation set is authoritative: Car.Status is deliberately not
// consulted here (the maintenance gate lives in the usecases, before the
// check). The checker is side-effect free; when called inside a transaction
// the repository read is locked (FOR UPDATE), which together with the
// storage-level exclusion constraint closes the check-then-act race.
type Checker struct {
	reservations ReservationReader
}

// NewChecker создает проверку доступности поверх репозитория бронирований
func NewChecker(reservations ReservationReader) *Checker {
	return &Checker{reservations: reservations}
}

// IsAvailable reports whether carID is free for the whole of rng.
// excludeReservationID removes one reservation from consideration, so an
// edit never conflicts with the reservation being edited.
func (c *Checker) IsAvailable(ctx context.Context, carID int64, rng domain.DateRange, excludeReservationID *int64) (bool, error) {
	existing, err := c.reservations.GetByFilter(ctx, domain.ReservationsFilter{
		CarID:                &carID,
		ExcludeReservationID: excludeReservationID,
	})
	if err != nil {
		return false, fmt.Errorf("availability: get reservations for car %d: %w", carID, err)
	}

	for _, r := range existing {
		if r.Dates.Overlaps(rng) {
			return false, nil
		}
	}

	return true, nil
}
