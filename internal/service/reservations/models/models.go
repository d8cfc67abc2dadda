package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	CarID      int64   `json:"carId"`
	StartDate  string  `json:"startDate"` // "2026-06-10"
	EndDate    string  `json:"endDate"`   // "2026-06-15"
	Days       int     `json:"days"`
	Phase      string  `json:"phase"` // upcoming | active | completed
	Paid       bool    `json:"paid"`
	PaidAt     *string `json:"paidAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// BulkResult итог пакетной операции: по каждому id операция применяется
// независимо, ошибки отдельных элементов не прерывают пакет
type BulkResult struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// FromDomainReservation конвертирует domain модель в DTO.
// Phase вычисляется на момент now, paid берётся из rental record
// (nil трактуется как "не оплачено" - legacy-данные без парной записи).
func FromDomainReservation(r *domain.Reservation, rental *domain.RentalRecord, now time.Time) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		CarID:      r.CarID,
		StartDate:  r.Dates.Start.Format(domain.DateFormat),
		EndDate:    r.Dates.End.Format(domain.DateFormat),
		Days:       r.Dates.Days(),
		Phase:      string(r.PhaseAt(now)),
		CreatedAt:  r.CreatedAt,
	}

	if rental != nil {
		resp.Paid = rental.Paid
		if rental.PaidAt != nil {
			paidStr := rental.PaidAt.Format(time.RFC3339)
			resp.PaidAt = &paidStr
		}
	}

	return resp
}
