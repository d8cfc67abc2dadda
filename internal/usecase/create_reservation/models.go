package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64     // ID клиента
	CarID      int64     // ID автомобиля
	StartDate  time.Time // Первый день аренды (включительно)
	EndDate    time.Time // Последний день аренды (включительно)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	CustomerID int64     // ID клиента
	CarID      int64     // ID автомобиля
	StartDate  time.Time // Первый день аренды
	EndDate    time.Time // Последний день аренды
	Days       int       // Количество дней аренды
	TotalPrice float64   // Стоимость по тарифу на момент бронирования
	RentalID   int64     // ID парной rental record (paid = false)
	CreatedAt  time.Time // Время создания
}
