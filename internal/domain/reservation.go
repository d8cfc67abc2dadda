package domain

import "time"

// ReservationPhase is the temporal state of a reservation, derived from its
// dates on every read and never stored, so date-comparison logic cannot
// diverge across call sites.
type ReservationPhase string

const (
	PhaseUpcoming  ReservationPhase = "upcoming"  // today < start
	PhaseActive    ReservationPhase = "active"    // start <= today <= end
	PhaseCompleted ReservationPhase = "completed" // today > end
)

// Reservation represents a customer's claim on a car for an inclusive date range
type Reservation struct {
	ID         int64
	CustomerID int64
	CarID      int64
	Dates      DateRange
	CreatedAt  time.Time
}

// PhaseAt returns the temporal phase of the reservation as of the given moment
func (r *Reservation) PhaseAt(now time.Time) ReservationPhase {
	today := TruncateToDay(now)

	switch {
	case today.Before(r.Dates.Start):
		return PhaseUpcoming
	case today.After(r.Dates.End):
		return PhaseCompleted
	default:
		return PhaseActive
	}
}

// HasStarted reports whether the rental period has already begun (today >= start)
func (r *Reservation) HasStarted(now time.Time) bool {
	return !TruncateToDay(now).Before(r.Dates.Start)
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	CarID                *int64 // Фильтр по автомобилю (опционально)
	CustomerID           *int64 // Фильтр по клиенту (опционально)
	ExcludeReservationID *int64 // Исключить бронирование (для сценария редактирования)
}
