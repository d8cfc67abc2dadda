package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerID *int64 `json:"customerId,omitempty"` // обязателен только для админа
	CarID      int64  `json:"carId"`
	StartDate  string `json:"startDate"` // "2026-09-01"
	EndDate    string `json:"endDate"`   // "2026-09-07"
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
	RentalID   int64   `json:"rentalId"`
	Paid       bool    `json:"paid"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(customerID int64) (*createReservation.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		CustomerID: customerID,
		CarID:      r.CarID,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		CarID:      resp.CarID,
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		Days:       resp.Days,
		TotalPrice: resp.TotalPrice,
		RentalID:   resp.RentalID,
		Paid:       false,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
