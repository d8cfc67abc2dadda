package domain

import "time"

// RentalRecord is the payment-tracking counterpart of a reservation.
// Exactly one record exists per reservation (created atomically with it;
// ensureRentalRecord repairs legacy rows where the pairing is broken).
type RentalRecord struct {
	ID            int64
	ReservationID int64
	Paid          bool
	PaidAt        *time.Time
}

// PaymentMethod represents the declared payment method of an audit row
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// Payment is a purely informational audit row. A paid rental record with no
// Payment rows is valid: the paid flag, not this table, drives the
// delete/edit eligibility rules.
type Payment struct {
	ID       int64
	RentalID int64
	Amount   float64
	Method   PaymentMethod
	PaidAt   time.Time
}

// ValidPaymentMethods список допустимых способов оплаты
var ValidPaymentMethods = []PaymentMethod{
	PaymentMethodCard,
	PaymentMethodCash,
	PaymentMethodTransfer,
}

// Valid reports whether the method is one of the known payment methods
func (m PaymentMethod) Valid() bool {
	for _, known := range ValidPaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}
