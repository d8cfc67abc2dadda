package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customerRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-RentalService/pkg/password"
)

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validInput() RegisterInput {
	return RegisterInput{
		Name:     "Иван Петров",
		Email:    "ivan@example.com",
		Phone:    "+79991234567",
		Address:  "Москва",
		Password: "secret123",
	}
}

func TestService_Register(t *testing.T) {
	t.Run("success stores bcrypt hash and normalized email", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
			if c.Email != "ivan@example.com" || c.PasswordHash == "secret123" {
				return false
			}
			return password.Verify("secret123", c.PasswordHash) == nil
		})).Return(&domain.Customer{ID: 42, Name: "Иван Петров", Email: "ivan@example.com"}, nil)
		svc := NewService(repo, nopLogger{})

		in := validInput()
		in.Email = "  Ivan@Example.COM "
		created, err := svc.Register(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, customerRepo.ErrEmailTaken)
		svc := NewService(repo, nopLogger{})

		_, err := svc.Register(context.Background(), validInput())

		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*RegisterInput)
		}{
			{"empty name", func(in *RegisterInput) { in.Name = "  " }},
			{"empty email", func(in *RegisterInput) { in.Email = "" }},
			{"malformed email", func(in *RegisterInput) { in.Email = "not-an-email" }},
			{"empty password", func(in *RegisterInput) { in.Password = "" }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := new(mockCustomerRepo)
				svc := NewService(repo, nopLogger{})

				in := validInput()
				tc.mutate(&in)
				_, err := svc.Register(context.Background(), in)

				assert.ErrorIs(t, err, ErrInvalidInput)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestService_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		repo.On("GetByID", mock.Anything, int64(42)).
			Return(&domain.Customer{ID: 42, Name: "Иван Петров"}, nil)
		svc := NewService(repo, nopLogger{})

		c, err := svc.GetByID(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, "Иван Петров", c.Name)
	})

	t.Run("missing customer", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		repo.On("GetByID", mock.Anything, int64(42)).
			Return(nil, customerRepo.ErrCustomerNotFound)
		svc := NewService(repo, nopLogger{})

		_, err := svc.GetByID(context.Background(), 42)

		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}
