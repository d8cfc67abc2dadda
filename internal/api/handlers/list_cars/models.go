package list_cars

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CarResponse HTTP response model
type CarResponse struct {
	ID           int64   `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	LicensePlate string  `json:"licensePlate"`
	FuelType     string  `json:"fuelType"`
	Seats        int     `json:"seats"`
	DailyPrice   float64 `json:"dailyPrice"`
	Transmission string  `json:"transmission"`
	Status       string  `json:"status"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// CarListResponse HTTP response со списком автомобилей
type CarListResponse struct {
	Cars []CarResponse `json:"cars"`
}

// FromDomainCar конвертирует domain модель в HTTP response
func FromDomainCar(c *domain.Car) *CarResponse {
	return &CarResponse{
		ID:           c.ID,
		Brand:        c.Brand,
		Model:        c.Model,
		LicensePlate: c.LicensePlate,
		FuelType:     string(c.FuelType),
		Seats:        c.Seats,
		DailyPrice:   c.DailyPrice,
		Transmission: string(c.Transmission),
		Status:       string(c.Status),
		ImageURL:     c.ImageURL,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainCars конвертирует список domain моделей в HTTP response
func FromDomainCars(cars []*domain.Car) *CarListResponse {
	resp := &CarListResponse{Cars: make([]CarResponse, 0, len(cars))}
	for _, c := range cars {
		resp.Cars = append(resp.Cars, *FromDomainCar(c))
	}
	return resp
}
