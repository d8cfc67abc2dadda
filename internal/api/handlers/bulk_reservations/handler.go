package bulk_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidIDs         = "некорректный список ID бронирований"
	msgUnknownAction      = "неизвестное действие, ожидается mark_paid или delete"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reservations/bulk
//
// Операция применяется к каждому id независимо: ошибки отдельных
// элементов попадают в счётчик failed, пакет всегда отвечает 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BulkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ids, invalid, err := req.ParseIDs()
	if err != nil {
		h.logger.Warn("POST /admin/reservations/bulk - Invalid ids: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}
	if invalid > 0 {
		h.logger.Warn("POST /admin/reservations/bulk - Skipped %d malformed ids", invalid)
	}

	switch req.Action {
	case ActionMarkPaid:
		result := h.service.BulkMarkPaid(r.Context(), ids)
		result.Failed += invalid
		h.logger.Info("POST /admin/reservations/bulk - Mark paid done: succeeded=%d, failed=%d",
			result.Succeeded, result.Failed)
		handlers.RespondJSON(w, http.StatusOK, result)

	case ActionDelete:
		result := h.service.BulkDelete(r.Context(), ids)
		result.Failed += invalid
		h.logger.Info("POST /admin/reservations/bulk - Delete done: succeeded=%d, failed=%d",
			result.Succeeded, result.Failed)
		handlers.RespondJSON(w, http.StatusOK, result)

	default:
		h.logger.Warn("POST /admin/reservations/bulk - Unknown action: %s", req.Action)
		handlers.RespondBadRequest(w, msgUnknownAction)
	}
}
