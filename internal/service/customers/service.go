package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customerRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-RentalService/pkg/password"
)

// Service сервис регистрации и поиска клиентов
type Service struct {
	repo   CustomerRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(repo CustomerRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// RegisterInput входные данные регистрации клиента
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

// Register регистрирует нового клиента. Email уникален, пароль хранится
// только в виде bcrypt-хеша.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	s.logger.Info("Register: new customer, email=%s", in.Email)

	if err := validateRegisterInput(in); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrEmptyPassword) {
			return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
		}
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	created, err := s.repo.Create(ctx, &domain.Customer{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, customerRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email %s already registered", in.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: customer created, id=%d", created.ID)
	return created, nil
}

// GetByID возвращает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return c, nil
}

func validateRegisterInput(in RegisterInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}
	if in.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}
