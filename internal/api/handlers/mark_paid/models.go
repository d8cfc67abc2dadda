package mark_paid

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// MarkPaidRequest HTTP request model. Тело опционально: без него rental
// record просто помечается оплаченной, без строки в журнале платежей.
type MarkPaidRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"` // card | cash | transfer
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	RentalID  int64    `json:"rentalId"`
	Paid      bool     `json:"paid"`
	PaymentID *int64   `json:"paymentId,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	Method    *string  `json:"method,omitempty"`
	PaidAt    *string  `json:"paidAt,omitempty"`
}

// FromDomainPayment конвертирует платёж в HTTP response
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	method := string(p.Method)
	paidAt := p.PaidAt.Format(time.RFC3339)
	return &PaymentResponse{
		RentalID:  p.RentalID,
		Paid:      true,
		PaymentID: &p.ID,
		Amount:    &p.Amount,
		Method:    &method,
		PaidAt:    &paidAt,
	}
}
