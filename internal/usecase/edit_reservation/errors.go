package edit_reservation

import "errors"

var (
	// ErrInvalidRange возвращается, когда дата начала позже даты окончания
	ErrInvalidRange = errors.New("edit_reservation: invalid date range")

	// ErrPastDate возвращается, когда новая дата начала аренды уже прошла
	ErrPastDate = errors.New("edit_reservation: start date is in the past")

	// ErrConflict возвращается, когда новый диапазон пересекается с другим
	// бронированием целевого автомобиля
	ErrConflict = errors.New("edit_reservation: dates conflict with an existing reservation")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// или скрыто от актора (чужое бронирование для клиента)
	ErrReservationNotFound = errors.New("edit_reservation: reservation not found")

	// ErrCarNotFound возвращается, когда целевой автомобиль не найден
	ErrCarNotFound = errors.New("edit_reservation: car not found")

	// ErrCarInMaintenance возвращается, когда целевой автомобиль на обслуживании
	ErrCarInMaintenance = errors.New("edit_reservation: car is under maintenance")

	// ErrForbidden возвращается, когда актору запрещено редактирование
	// (оплаченное или уже начавшееся бронирование для клиента)
	ErrForbidden = errors.New("edit_reservation: actor is not allowed to edit this reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_reservation: internal error")
)
