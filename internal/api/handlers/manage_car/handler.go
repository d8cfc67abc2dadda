package manage_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/cars"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCarID       = "некорректный ID автомобиля"
	msgCarNotFound        = "автомобиль не найден"
	msgPlateTaken         = "автомобиль с таким госномером уже зарегистрирован"
	msgHasReservations    = "нельзя удалить автомобиль с бронированиями"
	msgInvalidInput       = "некорректные данные автомобиля"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/cars
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomainCar(0))
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrPlateTaken):
			h.logger.Warn("POST /cars - Plate taken: plate=%s", req.LicensePlate)
			handlers.RespondError(w, http.StatusConflict, msgPlateTaken)

		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("POST /cars - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cars - Failed to create car: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars - Car created successfully: car_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainCar(created))
}

// HandleUpdate PUT /api/v1/cars/{carId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /cars/{id} - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req CarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cars/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), req.ToDomainCar(carID))
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("PUT /cars/{id} - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, cars.ErrPlateTaken):
			h.logger.Warn("PUT /cars/{id} - Plate taken: plate=%s", req.LicensePlate)
			handlers.RespondError(w, http.StatusConflict, msgPlateTaken)

		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("PUT /cars/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /cars/{id} - Failed to update car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cars/{id} - Car updated successfully: car_id=%d", carID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainCar(updated))
}

// HandleDelete DELETE /api/v1/cars/{carId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /cars/{id} - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	if err := h.service.Delete(r.Context(), carID); err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("DELETE /cars/{id} - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, cars.ErrHasReservations):
			h.logger.Warn("DELETE /cars/{id} - Car has reservations: car_id=%d", carID)
			handlers.RespondError(w, http.StatusConflict, msgHasReservations)

		default:
			h.logger.Error("DELETE /cars/{id} - Failed to delete car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cars/{id} - Car deleted successfully: car_id=%d", carID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
