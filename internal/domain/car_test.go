package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCar_IsBookable(t *testing.T) {
	assert.True(t, (&Car{Status: CarStatusAvailable}).IsBookable())
	// "reserved" - подсказка для витрины, бронирование не блокирует
	assert.True(t, (&Car{Status: CarStatusReserved}).IsBookable())
	assert.False(t, (&Car{Status: CarStatusMaintenance}).IsBookable())
}

func TestCar_PriceFor(t *testing.T) {
	c := &Car{DailyPrice: 1500}

	assert.Equal(t, 1500.0, c.PriceFor(mustRangeHelper(day(2026, 6, 10), day(2026, 6, 10))))
	assert.Equal(t, 9000.0, c.PriceFor(mustRangeHelper(day(2026, 6, 10), day(2026, 6, 15))))
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentMethodCard.Valid())
	assert.True(t, PaymentMethodCash.Valid())
	assert.True(t, PaymentMethodTransfer.Valid())
	assert.False(t, PaymentMethod("bitcoin").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
