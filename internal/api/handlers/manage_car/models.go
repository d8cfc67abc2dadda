package manage_car

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CarRequest HTTP request model для создания и обновления автомобиля
type CarRequest struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	LicensePlate string  `json:"licensePlate"`
	FuelType     string  `json:"fuelType"`
	Seats        int     `json:"seats"`
	DailyPrice   float64 `json:"dailyPrice"`
	Transmission string  `json:"transmission"`
	Status       string  `json:"status,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
}

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

// ToDomainCar конвертирует HTTP запрос в domain модель
func (r *CarRequest) ToDomainCar(id int64) *domain.Car {
	return &domain.Car{
		ID:           id,
		Brand:        r.Brand,
		Model:        r.Model,
		LicensePlate: r.LicensePlate,
		FuelType:     domain.FuelType(r.FuelType),
		Seats:        r.Seats,
		DailyPrice:   r.DailyPrice,
		Transmission: domain.Transmission(r.Transmission),
		Status:       domain.CarStatus(r.Status),
		ImageURL:     r.ImageURL,
	}
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
