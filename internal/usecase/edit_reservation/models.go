package edit_reservation

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на редактирование бронирования
type Request struct {
	ReservationID int64        // ID редактируемого бронирования
	NewCarID      int64        // Новый (или прежний) автомобиль
	NewStartDate  time.Time    // Новый первый день аренды
	NewEndDate    time.Time    // Новый последний день аренды
	Actor         domain.Actor // Кто редактирует
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID         int64
	CustomerID int64
	CarID      int64
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	TotalPrice float64 // Пересчитана по тарифу целевого автомобиля
}
