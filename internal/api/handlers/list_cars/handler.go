package list_cars

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/cars"
)

const (
	msgInvalidStatus = "некорректный статус автомобиля"
	msgInvalidCarID  = "некорректный ID автомобиля"
	msgCarNotFound   = "автомобиль не найден"
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

// HandleList GET /api/v1/cars?status=available
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var status *domain.CarStatus
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		s := domain.CarStatus(statusStr)
		switch s {
		case domain.CarStatusAvailable, domain.CarStatusReserved, domain.CarStatusMaintenance:
			status = &s
		default:
			h.logger.Warn("GET /cars - Invalid status filter: %s", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
	}

	list, err := h.service.List(r.Context(), status)
	if err != nil {
		h.logger.Error("GET /cars - Failed to list cars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cars - Retrieved %d cars", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainCars(list))
}

// HandleGet GET /api/v1/cars/{carId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cars/{id} - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	car, err := h.service.Get(r.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id} - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("GET /cars/{id} - Failed to get car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars/{id} - Car retrieved: car_id=%d", carID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainCar(car))
}
