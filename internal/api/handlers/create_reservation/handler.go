package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingActor       = "отсутствует информация об акторе"
	msgMissingCustomerID  = "для администратора обязателен customerId"
	msgInvalidRange       = "дата начала позже даты окончания"
	msgPastDate           = "дата начала аренды уже прошла"
	msgDatesConflict      = "выбранные даты пересекаются с существующим бронированием"
	msgCarNotFound        = "автомобиль не найден"
	msgCustomerNotFound   = "клиент не найден"
	msgCarInMaintenance   = "автомобиль на обслуживании"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	// Клиент бронирует только для себя; админ указывает клиента явно
	customerID := actor.CustomerID
	if actor.Admin {
		if req.CustomerID == nil || *req.CustomerID <= 0 {
			h.logger.Warn("POST /reservations - Admin request without customer ID")
			handlers.RespondBadRequest(w, msgMissingCustomerID)
			return
		}
		customerID = *req.CustomerID
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrConflict):
			h.logger.Warn("POST /reservations - Dates conflict: customer_id=%d, car_id=%d", customerID, req.CarID)
			handlers.RespondError(w, http.StatusConflict, msgDatesConflict)

		case errors.Is(err, createReservation.ErrCarNotFound):
			h.logger.Warn("POST /reservations - Car not found: car_id=%d", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, createReservation.ErrCustomerNotFound):
			h.logger.Warn("POST /reservations - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createReservation.ErrCarInMaintenance):
			h.logger.Warn("POST /reservations - Car in maintenance: car_id=%d", req.CarID)
			handlers.RespondError(w, http.StatusConflict, msgCarInMaintenance)

		case errors.Is(err, createReservation.ErrInvalidRange):
			h.logger.Warn("POST /reservations - Invalid range: customer_id=%d, car_id=%d", customerID, req.CarID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createReservation.ErrPastDate):
			h.logger.Warn("POST /reservations - Past start date: customer_id=%d, car_id=%d", customerID, req.CarID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: customer_id=%d, car_id=%d, error=%v",
				customerID, req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, customer_id=%d, car_id=%d",
		result.ID, customerID, req.CarID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
