package domain

import "time"

// CarStatus represents the administrative status of a car
type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusReserved    CarStatus = "reserved"
	CarStatusMaintenance CarStatus = "maintenance"
)

// Transmission represents the gearbox type
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

// FuelType represents the fuel of a car
type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
)

// Car represents a vehicle in the rental fleet.
//
// Status is an admin-set advisory flag: only "maintenance" blocks new
// reservations. "available"/"reserved" are display hints and are never
// consulted for booking decisions - true availability is derived from the
// reservation set (a car can carry multiple future reservations on disjoint
// dates, so a single status flag cannot represent it).
type Car struct {
	ID           int64
	Brand        string
	Model        string
	LicensePlate string
	FuelType     FuelType
	Seats        int
	DailyPrice   float64
	Transmission Transmission
	Status       CarStatus
	ImageURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBookable returns false only when the car is under maintenance
func (c *Car) IsBookable() bool {
	return c.Status != CarStatusMaintenance
}

// PriceFor computes the total rental price for the given range
// at the car's current daily rate. No proration, discounts or taxes.
func (c *Car) PriceFor(r DateRange) float64 {
	return c.DailyPrice * float64(r.Days())
}

// ValidCarStatuses список допустимых статусов автомобиля
var ValidCarStatuses = []CarStatus{
	CarStatusAvailable,
	CarStatusReserved,
	CarStatusMaintenance,
}

// ValidTransmissions список допустимых типов коробки передач
var ValidTransmissions = []Transmission{
	TransmissionManual,
	TransmissionAutomatic,
}
