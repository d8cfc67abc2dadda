package payments

import "errors"

var (
	// ErrRentalNotFound возвращается, когда rental record не найдена
	ErrRentalNotFound = errors.New("payments.service: rental record not found")

	// ErrReservationNotFound возвращается, когда бронирование для
	// восстановления rental record не существует
	ErrReservationNotFound = errors.New("payments.service: reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("payments.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments.service: internal error")
)
