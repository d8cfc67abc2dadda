package mark_paid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/payments"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRentalID    = "некорректный ID аренды"
	msgRentalNotFound     = "запись об аренде не найдена"
	msgInvalidInput       = "некорректные данные платежа"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals/{rentalId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rentalID, err := strconv.ParseInt(vars["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /rentals/{id}/pay - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	// Тело опционально: без него только помечаем оплату,
	// с ним дополнительно пишем строку в журнал платежей
	var req MarkPaidRequest
	hasBody := r.ContentLength > 0
	if hasBody {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /rentals/{id}/pay - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	if !hasBody {
		if err := h.service.MarkPaid(r.Context(), rentalID); err != nil {
			h.respondServiceError(w, rentalID, err)
			return
		}

		h.logger.Info("POST /rentals/{id}/pay - Rental marked paid: rental_id=%d", rentalID)
		handlers.RespondJSON(w, http.StatusOK, &PaymentResponse{RentalID: rentalID, Paid: true})
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), rentalID, req.Amount, domain.PaymentMethod(req.Method))
	if err != nil {
		h.respondServiceError(w, rentalID, err)
		return
	}

	h.logger.Info("POST /rentals/{id}/pay - Payment recorded: rental_id=%d, payment_id=%d",
		rentalID, payment.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainPayment(payment))
}

func (h *Handler) respondServiceError(w http.ResponseWriter, rentalID int64, err error) {
	switch {
	case errors.Is(err, payments.ErrRentalNotFound):
		h.logger.Warn("POST /rentals/{id}/pay - Rental not found: rental_id=%d", rentalID)
		handlers.RespondNotFound(w, msgRentalNotFound)

	case errors.Is(err, payments.ErrInvalidInput):
		h.logger.Warn("POST /rentals/{id}/pay - Invalid input: rental_id=%d, error=%v", rentalID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("POST /rentals/{id}/pay - Failed to mark paid: rental_id=%d, error=%v", rentalID, err)
		handlers.RespondInternalError(w)
	}
}
