package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReservationRepo) GetReport(ctx context.Context) ([]*reservationRepo.ReportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservationRepo.ReportRow), args.Error(1)
}

type mockRentalRepo struct {
	mock.Mock
}

func (m *mockRentalRepo) GetByReservationID(ctx context.Context, reservationID int64) (*domain.RentalRecord, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *mockRentalRepo) DeleteByReservationID(ctx context.Context, reservationID int64) error {
	return m.Called(ctx, reservationID).Error(0)
}

type mockPaymentTracker struct {
	mock.Mock
}

func (m *mockPaymentTracker) EnsureRentalRecord(ctx context.Context, reservationID int64) (*domain.RentalRecord, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *mockPaymentTracker) MarkPaid(ctx context.Context, rentalID int64) error {
	return m.Called(ctx, rentalID).Error(0)
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) domain.DateRange {
	t.Helper()
	r, err := domain.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

type fixture struct {
	reservations *mockReservationRepo
	rentals      *mockRentalRepo
	payments     *mockPaymentTracker
	svc          *Service
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		reservations: new(mockReservationRepo),
		rentals:      new(mockRentalRepo),
		payments:     new(mockPaymentTracker),
	}
	f.svc = NewService(f.reservations, f.rentals, f.payments, &fakeTxManager{}, nopLogger{})
	f.svc.timeProvider = &fixedTimeProvider{now: now}
	return f
}

func upcomingReservation(t *testing.T) *domain.Reservation {
	return &domain.Reservation{
		ID:         100,
		CustomerID: 42,
		CarID:      7,
		Dates:      mustRange(t, day(2026, 6, 10), day(2026, 6, 15)),
	}
}

func TestService_GetByID(t *testing.T) {
	now := day(2026, 6, 1)

	t.Run("owner sees own reservation with payment state", func(t *testing.T) {
		f := newFixture(now)

		f.reservations.On("GetByID", mock.Anything, int64(100)).Return(upcomingReservation(t), nil)
		paidAt := day(2026, 6, 2)
		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).
			Return(&domain.RentalRecord{ID: 200, ReservationID: 100, Paid: true, PaidAt: &paidAt}, nil)

		resp, err := f.svc.GetByID(context.Background(), 100, domain.CustomerActor(42))

		require.NoError(t, err)
		assert.Equal(t, "upcoming", resp.Phase)
		assert.True(t, resp.Paid)
		require.NotNil(t, resp.PaidAt)
	})

	t.Run("foreign reservation is hidden as not found", func(t *testing.T) {
		f := newFixture(now)

		f.reservations.On("GetByID", mock.Anything, int64(100)).Return(upcomingReservation(t), nil)

		_, err := f.svc.GetByID(context.Background(), 100, domain.CustomerActor(99))

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("admin sees any reservation", func(t *testing.T) {
		f := newFixture(now)

		f.reservations.On("GetByID", mock.Anything, int64(100)).Return(upcomingReservation(t), nil)
		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).
			Return(nil, rentalRepo.ErrRentalNotFound)

		resp, err := f.svc.GetByID(context.Background(), 100, domain.AdminActor())

		require.NoError(t, err)
		// Утерянная rental record трактуется как "не оплачено"
		assert.False(t, resp.Paid)
	})
}

func TestService_GetCustomerReservations(t *testing.T) {
	now := day(2026, 6, 1)

	t.Run("customer cannot list a foreign history", func(t *testing.T) {
		f := newFixture(now)

		_, err := f.svc.GetCustomerReservations(context.Background(), 42, domain.CustomerActor(99))

		assert.ErrorIs(t, err, ErrAccessDenied)
		f.reservations.AssertNotCalled(t, "GetByFilter", mock.Anything, mock.Anything)
	})

	t.Run("admin lists any customer", func(t *testing.T) {
		f := newFixture(now)

		f.reservations.On("GetByFilter", mock.Anything, mock.Anything).
			Return([]*domain.Reservation{upcomingReservation(t)}, nil)
		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).
			Return(&domain.RentalRecord{ID: 200, ReservationID: 100, Paid: false}, nil)

		resp, err := f.svc.GetCustomerReservations(context.Background(), 42, domain.AdminActor())

		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 1)
	})
}

func TestService_Delete(t *testing.T) {
	now := day(2026, 6, 1)

	t.Run("owner deletes unpaid upcoming reservation with its rental record", func(t *testing.T) {
		f := newFixture(now)

		f.reservations.On("GetByID", mock.Anything, int64(100)).Return(upcomingReservation(t), nil)
		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).
			Return(&domain.RentalRecord{ID: 200, ReservationID: 100, Paid: false}, nil)
		f.rentals.On("DeleteByReservationID", mock.Anything, int64(100)).Return(nil)
		f.reservations.On("Delete", mock.Anything, int64(100)).Return(nil)

		err := f.svc.Delete(context.Background(), 100, domain.CustomerActor(42))

		require.NoError(t, err)
		f.rentals.AssertCalled(t, "DeleteByReservationID", mock.Anything, int64(100))
		f.reservations.AssertCalled(t, "Delete", mock.Anything, int64(100))
	})

	t.Run("paid reservation is forbidden for owner", func(t *testing.T) {
		f := newFixture(now)

		f.reservations.On("GetByID", mock.Anything, int64(100)).Return(upcomingReservation(t), nil)
		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).
			Return(&domain.RentalRecord{ID: 200, ReservationID: 100, Paid: true}, nil)

		err := f.svc.Delete(context.Background(), 100, domain.CustomerActor(42))

		assert.ErrorIs(t, err, ErrForbidden)
		f.reservations.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("started reservation is forbidden for owner", func(t *testing.T) {
		f := newFixture(day(2026, 6, 12))

		f.reservations.On("GetByID", mock.Anything, int64(100)).Return(upcomingReservation(t), nil)
		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).
			Return(&domain.RentalRecord{ID: 200, ReservationID: 100, Paid: false}, nil)

		err := f.svc.Delete(context.Background(), 100, domain.CustomerActor(42))

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin deletes paid and started reservations", func(t *testing.T) {
		f := newFixture(day(2026, 6, 12))

		f.reservations.On("GetByID", mock.Anything, int64(100)).Return(upcomingReservation(t), nil)
		f.rentals.On("DeleteByReservationID", mock.Anything, int64(100)).Return(nil)
		f.reservations.On("Delete", mock.Anything, int64(100)).Return(nil)

		err := f.svc.Delete(context.Background(), 100, domain.AdminActor())

		require.NoError(t, err)
		// Для админа оплата не проверяется
		f.rentals.AssertNotCalled(t, "GetByReservationID", mock.Anything, mock.Anything)
	})

	t.Run("missing reservation", func(t *testing.T) {
		f := newFixture(now)

		f.reservations.On("GetByID", mock.Anything, int64(100)).
			Return(nil, reservationRepo.ErrReservationNotFound)

		err := f.svc.Delete(context.Background(), 100, domain.AdminActor())

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestService_BulkMarkPaid(t *testing.T) {
	f := newFixture(day(2026, 6, 1))

	f.payments.On("EnsureRentalRecord", mock.Anything, int64(1)).
		Return(&domain.RentalRecord{ID: 11, ReservationID: 1}, nil)
	f.payments.On("MarkPaid", mock.Anything, int64(11)).Return(nil)

	// Второй id не существует - пакет продолжает работу
	f.payments.On("EnsureRentalRecord", mock.Anything, int64(2)).
		Return(nil, errors.New("reservation not found"))

	f.payments.On("EnsureRentalRecord", mock.Anything, int64(3)).
		Return(&domain.RentalRecord{ID: 13, ReservationID: 3}, nil)
	f.payments.On("MarkPaid", mock.Anything, int64(13)).Return(nil)

	result := f.svc.BulkMarkPaid(context.Background(), []int64{1, 2, 3})

	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
}

func TestService_BulkDelete(t *testing.T) {
	f := newFixture(day(2026, 6, 1))

	f.reservations.On("GetByID", mock.Anything, int64(1)).Return(&domain.Reservation{
		ID: 1, CustomerID: 5, Dates: mustRange(t, day(2026, 6, 10), day(2026, 6, 12)),
	}, nil)
	f.rentals.On("DeleteByReservationID", mock.Anything, int64(1)).Return(nil)
	f.reservations.On("Delete", mock.Anything, int64(1)).Return(nil)

	f.reservations.On("GetByID", mock.Anything, int64(2)).
		Return(nil, reservationRepo.ErrReservationNotFound)

	result := f.svc.BulkDelete(context.Background(), []int64{1, 2})

	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
}
