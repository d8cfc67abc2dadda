package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinDailyPrice      = 0.0
	MaxRentalDays      = 90 // максимальная длительность одной аренды
	MinSeats           = 1
	MaxSeats           = 9
	MaxLicensePlateLen = 16
	MaxNotesLength     = 500
)
