package create_reservation

import "errors"

var (
	// ErrInvalidRange возвращается, когда дата начала позже даты окончания
	ErrInvalidRange = errors.New("create_reservation: invalid date range")

	// ErrPastDate возвращается, когда дата начала аренды уже прошла
	ErrPastDate = errors.New("create_reservation: start date is in the past")

	// ErrConflict возвращается, когда диапазон пересекается с существующим
	// бронированием этого автомобиля
	ErrConflict = errors.New("create_reservation: dates conflict with an existing reservation")

	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("create_reservation: car not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_reservation: customer not found")

	// ErrCarInMaintenance возвращается, когда автомобиль выведен на обслуживание
	ErrCarInMaintenance = errors.New("create_reservation: car is under maintenance")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
