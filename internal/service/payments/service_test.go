package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

type mockRentalRepo struct {
	mock.Mock
}

func (m *mockRentalRepo) Create(ctx context.Context, reservationID int64) (*domain.RentalRecord, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *mockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.RentalRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *mockRentalRepo) GetByReservationID(ctx context.Context, reservationID int64) (*domain.RentalRecord, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *mockRentalRepo) MarkPaid(ctx context.Context, rentalID int64) error {
	return m.Called(ctx, rentalID).Error(0)
}

func (m *mockRentalRepo) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *mockRentalRepo) GetPaymentsByRentalID(ctx context.Context, rentalID int64) ([]*domain.Payment, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

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

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	rentals      *mockRentalRepo
	reservations *mockReservationRepo
	svc          *Service
}

func newFixture() *fixture {
	f := &fixture{
		rentals:      new(mockRentalRepo),
		reservations: new(mockReservationRepo),
	}
	f.svc = NewService(f.rentals, f.reservations, &fakeTxManager{}, nopLogger{})
	return f
}

func TestService_MarkPaid(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture()

		f.rentals.On("MarkPaid", mock.Anything, int64(200)).Return(nil)

		err := f.svc.MarkPaid(context.Background(), 200)

		require.NoError(t, err)
	})

	t.Run("missing rental record", func(t *testing.T) {
		f := newFixture()

		f.rentals.On("MarkPaid", mock.Anything, int64(200)).Return(rentalRepo.ErrRentalNotFound)

		err := f.svc.MarkPaid(context.Background(), 200)

		assert.ErrorIs(t, err, ErrRentalNotFound)
	})
}

func TestService_EnsureRentalRecord(t *testing.T) {
	t.Run("existing record is returned as is", func(t *testing.T) {
		f := newFixture()

		existing := &domain.RentalRecord{ID: 200, ReservationID: 100}
		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).Return(existing, nil)

		rental, err := f.svc.EnsureRentalRecord(context.Background(), 100)

		require.NoError(t, err)
		assert.Equal(t, existing, rental)
		f.rentals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing record is recreated for existing reservation", func(t *testing.T) {
		f := newFixture()

		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).
			Return(nil, rentalRepo.ErrRentalNotFound)
		f.reservations.On("GetByID", mock.Anything, int64(100)).
			Return(&domain.Reservation{ID: 100, CustomerID: 42}, nil)
		created := &domain.RentalRecord{ID: 201, ReservationID: 100}
		f.rentals.On("Create", mock.Anything, int64(100)).Return(created, nil)

		rental, err := f.svc.EnsureRentalRecord(context.Background(), 100)

		require.NoError(t, err)
		assert.Equal(t, created, rental)
	})

	t.Run("no record for missing reservation", func(t *testing.T) {
		f := newFixture()

		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).
			Return(nil, rentalRepo.ErrRentalNotFound)
		f.reservations.On("GetByID", mock.Anything, int64(100)).
			Return(nil, reservationRepo.ErrReservationNotFound)

		_, err := f.svc.EnsureRentalRecord(context.Background(), 100)

		assert.ErrorIs(t, err, ErrReservationNotFound)
		f.rentals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lost race with parallel repair re-reads the record", func(t *testing.T) {
		f := newFixture()

		created := &domain.RentalRecord{ID: 201, ReservationID: 100}
		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).
			Return(nil, rentalRepo.ErrRentalNotFound).Once()
		f.reservations.On("GetByID", mock.Anything, int64(100)).
			Return(&domain.Reservation{ID: 100, CustomerID: 42}, nil)
		f.rentals.On("Create", mock.Anything, int64(100)).
			Return(nil, rentalRepo.ErrAlreadyExists)
		f.rentals.On("GetByReservationID", mock.Anything, int64(100)).
			Return(created, nil)

		rental, err := f.svc.EnsureRentalRecord(context.Background(), 100)

		require.NoError(t, err)
		assert.Equal(t, created, rental)
	})
}

func TestService_RecordPayment(t *testing.T) {
	t.Run("payment is recorded and rental marked paid in one transaction", func(t *testing.T) {
		f := newFixture()

		f.rentals.On("GetByID", mock.Anything, int64(200)).
			Return(&domain.RentalRecord{ID: 200, ReservationID: 100}, nil)
		f.rentals.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
			return p.RentalID == 200 && p.Amount == 5000 && p.Method == domain.PaymentMethodCard
		})).Return(&domain.Payment{ID: 300, RentalID: 200, Amount: 5000, Method: domain.PaymentMethodCard}, nil)
		f.rentals.On("MarkPaid", mock.Anything, int64(200)).Return(nil)

		payment, err := f.svc.RecordPayment(context.Background(), 200, 5000, domain.PaymentMethodCard)

		require.NoError(t, err)
		assert.Equal(t, int64(300), payment.ID)
		f.rentals.AssertCalled(t, "MarkPaid", mock.Anything, int64(200))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.RecordPayment(context.Background(), 200, 0, domain.PaymentMethodCard)

		assert.ErrorIs(t, err, ErrInvalidInput)
		f.rentals.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.RecordPayment(context.Background(), 200, 1000, domain.PaymentMethod("barter"))

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing rental record", func(t *testing.T) {
		f := newFixture()

		f.rentals.On("GetByID", mock.Anything, int64(200)).
			Return(nil, rentalRepo.ErrRentalNotFound)

		_, err := f.svc.RecordPayment(context.Background(), 200, 1000, domain.PaymentMethodCash)

		assert.ErrorIs(t, err, ErrRentalNotFound)
		f.rentals.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})

	t.Run("payment insert failure rolls back", func(t *testing.T) {
		f := newFixture()

		f.rentals.On("GetByID", mock.Anything, int64(200)).
			Return(&domain.RentalRecord{ID: 200, ReservationID: 100}, nil)
		f.rentals.On("CreatePayment", mock.Anything, mock.Anything).
			Return(nil, errors.New("insert failed"))

		_, err := f.svc.RecordPayment(context.Background(), 200, 1000, domain.PaymentMethodCash)

		assert.ErrorIs(t, err, ErrInternal)
		f.rentals.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
	})
}

func TestService_GetPayments(t *testing.T) {
	f := newFixture()

	f.rentals.On("GetPaymentsByRentalID", mock.Anything, int64(200)).
		Return([]*domain.Payment{{ID: 300, RentalID: 200, Amount: 5000}}, nil)

	list, err := f.svc.GetPayments(context.Background(), 200)

	require.NoError(t, err)
	assert.Len(t, list, 1)
}
