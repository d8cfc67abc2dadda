package edit_reservation

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	editReservation "github.com/m04kA/SMC-RentalService/internal/usecase/edit_reservation"
)

// EditReservationRequest HTTP request model
type EditReservationRequest struct {
	CarID     int64  `json:"carId"`
	StartDate string `json:"startDate"` // "2026-09-01"
	EndDate   string `json:"endDate"`   // "2026-09-07"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	CarID      int64   `json:"carId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Days       int     `json:"days"`
	TotalPrice float64 `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditReservationRequest) ToUseCaseRequest(reservationID int64, actor domain.Actor) (*editReservation.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &editReservation.Request{
		ReservationID: reservationID,
		NewCarID:      r.CarID,
		NewStartDate:  startDate,
		NewEndDate:    endDate,
		Actor:         actor,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		CarID:      resp.CarID,
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		Days:       resp.Days,
		TotalPrice: resp.TotalPrice,
	}
}
