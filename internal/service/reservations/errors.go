package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// или скрыто от актора (чужое бронирование для клиента)
	ErrReservationNotFound = errors.New("reservations.service: reservation not found")

	// ErrAccessDenied возвращается, когда у актора нет прав доступа
	ErrAccessDenied = errors.New("reservations.service: access denied")

	// ErrForbidden возвращается, когда клиент пытается удалить оплаченное
	// или уже начавшееся бронирование
	ErrForbidden = errors.New("reservations.service: operation is not allowed for this reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations.service: internal error")
)
