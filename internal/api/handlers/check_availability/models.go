package check_availability

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model: доступность и расценка
type AvailabilityResponse struct {
	CarID      int64   `json:"carId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Days       int     `json:"days"`
	Available  bool    `json:"available"`
	DailyPrice float64 `json:"dailyPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		CarID:      resp.CarID,
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		Days:       resp.Days,
		Available:  resp.Available,
		DailyPrice: resp.DailyPrice,
		TotalPrice: resp.TotalPrice,
	}
}
