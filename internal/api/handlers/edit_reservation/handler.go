package edit_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	editReservation "github.com/m04kA/SMC-RentalService/internal/usecase/edit_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingActor         = "отсутствует информация об акторе"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "редактирование этого бронирования запрещено"
	msgInvalidRange         = "дата начала позже даты окончания"
	msgPastDate             = "дата начала аренды уже прошла"
	msgDatesConflict        = "выбранные даты пересекаются с существующим бронированием"
	msgCarNotFound          = "автомобиль не найден"
	msgCarInMaintenance     = "автомобиль на обслуживании"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase EditReservationUseCase
	logger  Logger
}

func NewHandler(useCase EditReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /reservations/{id} - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req EditReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID, actor)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, editReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, editReservation.ErrForbidden):
			h.logger.Warn("PUT /reservations/{id} - Edit forbidden: reservation_id=%d, customer_id=%d",
				reservationID, actor.CustomerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, editReservation.ErrConflict):
			h.logger.Warn("PUT /reservations/{id} - Dates conflict: reservation_id=%d, car_id=%d",
				reservationID, req.CarID)
			handlers.RespondError(w, http.StatusConflict, msgDatesConflict)

		case errors.Is(err, editReservation.ErrCarNotFound):
			h.logger.Warn("PUT /reservations/{id} - Car not found: car_id=%d", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, editReservation.ErrCarInMaintenance):
			h.logger.Warn("PUT /reservations/{id} - Car in maintenance: car_id=%d", req.CarID)
			handlers.RespondError(w, http.StatusConflict, msgCarInMaintenance)

		case errors.Is(err, editReservation.ErrInvalidRange):
			h.logger.Warn("PUT /reservations/{id} - Invalid range: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, editReservation.ErrPastDate):
			h.logger.Warn("PUT /reservations/{id} - Past start date: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, editReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to edit reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
