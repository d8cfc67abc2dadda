package rental

import "errors"

var (
	// ErrRentalNotFound возвращается, когда rental record не найдена
	ErrRentalNotFound = errors.New("rental.repository: rental record not found")

	// ErrAlreadyExists возвращается при попытке создать вторую rental record
	// для одного бронирования (unique constraint по reservation_id)
	ErrAlreadyExists = errors.New("rental.repository: rental record already exists for reservation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rental.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rental.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rental.repository: failed to scan row")
)
