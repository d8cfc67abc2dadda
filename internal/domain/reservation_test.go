package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservation_PhaseAt(t *testing.T) {
	res := &Reservation{
		Dates: mustRangeHelper(day(2026, 6, 10), day(2026, 6, 15)),
	}

	tests := []struct {
		name     string
		now      time.Time
		expected ReservationPhase
	}{
		{"day before start", day(2026, 6, 9), PhaseUpcoming},
		{"first day", day(2026, 6, 10), PhaseActive},
		{"middle of the range", day(2026, 6, 12), PhaseActive},
		{"last day", day(2026, 6, 15), PhaseActive},
		{"day after end", day(2026, 6, 16), PhaseCompleted},
		{"late evening before start still upcoming", time.Date(2026, 6, 9, 23, 30, 0, 0, time.UTC), PhaseUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, res.PhaseAt(tt.now))
		})
	}
}

func TestReservation_HasStarted(t *testing.T) {
	res := &Reservation{
		Dates: mustRangeHelper(day(2026, 6, 10), day(2026, 6, 15)),
	}

	assert.False(t, res.HasStarted(day(2026, 6, 9)))
	assert.True(t, res.HasStarted(day(2026, 6, 10)))
	assert.True(t, res.HasStarted(day(2026, 6, 20)))
}

func TestActor_Owns(t *testing.T) {
	res := &Reservation{ID: 1, CustomerID: 42}

	assert.True(t, CustomerActor(42).Owns(res))
	assert.False(t, CustomerActor(7).Owns(res))
	// Админ не "владеет" бронированиями, его права проверяются отдельно
	assert.False(t, AdminActor().Owns(res))
}
