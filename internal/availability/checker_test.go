package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type mockReservationReader struct {
	mock.Mock
}

func (m *mockReservationReader) GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dateRange(t *testing.T, start, end time.Time) domain.DateRange {
	t.Helper()
	r, err := domain.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestChecker_IsAvailable(t *testing.T) {
	carID := int64(7)

	t.Run("free car is available", func(t *testing.T) {
		reader := new(mockReservationReader)
		reader.On("GetByFilter", mock.Anything, mock.Anything).
			Return([]*domain.Reservation{}, nil)

		checker := NewChecker(reader)
		available, err := checker.IsAvailable(context.Background(), carID,
			dateRange(t, day(2026, 6, 10), day(2026, 6, 15)), nil)

		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("overlapping reservation blocks", func(t *testing.T) {
		reader := new(mockReservationReader)
		reader.On("GetByFilter", mock.Anything, mock.Anything).
			Return([]*domain.Reservation{
				{ID: 1, CarID: carID, Dates: dateRange(t, day(2026, 6, 14), day(2026, 6, 20))},
			}, nil)

		checker := NewChecker(reader)
		available, err := checker.IsAvailable(context.Background(), carID,
			dateRange(t, day(2026, 6, 10), day(2026, 6, 15)), nil)

		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("touching endpoint blocks", func(t *testing.T) {
		reader := new(mockReservationReader)
		reader.On("GetByFilter", mock.Anything, mock.Anything).
			Return([]*domain.Reservation{
				{ID: 1, CarID: carID, Dates: dateRange(t, day(2026, 6, 15), day(2026, 6, 20))},
			}, nil)

		checker := NewChecker(reader)
		available, err := checker.IsAvailable(context.Background(), carID,
			dateRange(t, day(2026, 6, 10), day(2026, 6, 15)), nil)

		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("disjoint reservations do not block", func(t *testing.T) {
		reader := new(mockReservationReader)
		reader.On("GetByFilter", mock.Anything, mock.Anything).
			Return([]*domain.Reservation{
				{ID: 1, CarID: carID, Dates: dateRange(t, day(2026, 6, 1), day(2026, 6, 5))},
				{ID: 2, CarID: carID, Dates: dateRange(t, day(2026, 6, 20), day(2026, 6, 25))},
			}, nil)

		checker := NewChecker(reader)
		available, err := checker.IsAvailable(context.Background(), carID,
			dateRange(t, day(2026, 6, 10), day(2026, 6, 15)), nil)

		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("exclude id is passed to the filter", func(t *testing.T) {
		reader := new(mockReservationReader)
		reader.On("GetByFilter", mock.Anything, mock.MatchedBy(func(f domain.ReservationsFilter) bool {
			return f.ExcludeReservationID != nil && *f.ExcludeReservationID == 33 &&
				f.CarID != nil && *f.CarID == carID
		})).Return([]*domain.Reservation{}, nil)

		checker := NewChecker(reader)
		available, err := checker.IsAvailable(context.Background(), carID,
			dateRange(t, day(2026, 6, 10), day(2026, 6, 15)), ptr.Ptr(int64(33)))

		require.NoError(t, err)
		assert.True(t, available)
		reader.AssertExpectations(t)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		reader := new(mockReservationReader)
		reader.On("GetByFilter", mock.Anything, mock.Anything).
			Return(nil, errors.New("db down"))

		checker := NewChecker(reader)
		_, err := checker.IsAvailable(context.Background(), carID,
			dateRange(t, day(2026, 6, 10), day(2026, 6, 15)), nil)

		assert.Error(t, err)
	})
}
