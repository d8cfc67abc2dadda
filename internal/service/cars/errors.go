package cars

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("cars.service: car not found")

	// ErrPlateTaken возвращается при попытке зарегистрировать автомобиль
	// с уже занятым госномером
	ErrPlateTaken = errors.New("cars.service: license plate already registered")

	// ErrHasReservations возвращается при попытке удалить автомобиль
	// с существующими бронированиями
	ErrHasReservations = errors.New("cars.service: car has reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cars.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cars.service: internal error")
)
