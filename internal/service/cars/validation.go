package cars

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateCar проверяет поля автомобиля перед записью
func validateCar(c *domain.Car) error {
	if c.Brand == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	if c.LicensePlate == "" {
		return fmt.Errorf("%w: license plate is required", ErrInvalidInput)
	}
	if c.Seats <= 0 {
		return fmt.Errorf("%w: seats must be positive", ErrInvalidInput)
	}
	if c.DailyPrice <= 0 {
		return fmt.Errorf("%w: daily price must be positive", ErrInvalidInput)
	}

	switch c.Transmission {
	case domain.TransmissionManual, domain.TransmissionAutomatic:
	default:
		return fmt.Errorf("%w: unknown transmission %q", ErrInvalidInput, c.Transmission)
	}

	switch c.FuelType {
	case domain.FuelPetrol, domain.FuelDiesel, domain.FuelHybrid, domain.FuelElectric:
	default:
		return fmt.Errorf("%w: unknown fuel type %q", ErrInvalidInput, c.FuelType)
	}

	switch c.Status {
	case "", domain.CarStatusAvailable, domain.CarStatusReserved, domain.CarStatusMaintenance:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, c.Status)
	}

	return nil
}
