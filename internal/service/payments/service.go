package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

// Service сервис учёта оплат: идемпотентная пометка "оплачено",
// восстановление отсутствующих rental records и журнал платежей
type Service struct {
	rentalRepo      RentalRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса оплат
func NewService(
	rentalRepo RentalRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		rentalRepo:      rentalRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// MarkPaid помечает rental record оплаченной. Повторный вызов не ошибка:
// paid_at первой оплаты сохраняется.
func (s *Service) MarkPaid(ctx context.Context, rentalID int64) error {
	s.logger.Info("MarkPaid: rental id=%d", rentalID)

	if err := s.rentalRepo.MarkPaid(ctx, rentalID); err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("MarkPaid: rental id=%d not found", rentalID)
			return ErrRentalNotFound
		}
		s.logger.Error("MarkPaid: repository error for rental id=%d: %v", rentalID, err)
		return fmt.Errorf("%w: MarkPaid - repository error: %v", ErrInternal, err)
	}

	return nil
}

// EnsureRentalRecord возвращает rental record бронирования, создавая её,
// если она отсутствует (ремонт после частичного сбоя старых данных).
// Отсутствующая запись допустима только для существующего бронирования.
func (s *Service) EnsureRentalRecord(ctx context.Context, reservationID int64) (*domain.RentalRecord, error) {
	rental, err := s.rentalRepo.GetByReservationID(ctx, reservationID)
	if err == nil {
		return rental, nil
	}
	if !errors.Is(err, rentalRepo.ErrRentalNotFound) {
		s.logger.Error("EnsureRentalRecord: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: EnsureRentalRecord - repository error: %v", ErrInternal, err)
	}

	// Запись отсутствует - проверяем, что само бронирование существует
	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("EnsureRentalRecord: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("EnsureRentalRecord: failed to get reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: EnsureRentalRecord - get reservation: %v", ErrInternal, err)
	}

	s.logger.Warn("EnsureRentalRecord: reservation id=%d has no rental record, creating", reservationID)

	rental, err = s.rentalRepo.Create(ctx, reservationID)
	if err != nil {
		// Гонка с параллельным восстановлением - запись уже создана
		if errors.Is(err, rentalRepo.ErrAlreadyExists) {
			return s.rentalRepo.GetByReservationID(ctx, reservationID)
		}
		s.logger.Error("EnsureRentalRecord: failed to create rental record for reservation id=%d: %v",
			reservationID, err)
		return nil, fmt.Errorf("%w: EnsureRentalRecord - create rental record: %v", ErrInternal, err)
	}

	return rental, nil
}

// RecordPayment фиксирует платёж по rental record и помечает её оплаченной.
// Обе записи меняются в одной транзакции.
func (s *Service) RecordPayment(ctx context.Context, rentalID int64, amount float64, method domain.PaymentMethod) (*domain.Payment, error) {
	s.logger.Info("RecordPayment: rental id=%d, amount=%.2f, method=%s", rentalID, amount, method)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, method)
	}

	var payment *domain.Payment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.rentalRepo.GetByID(txCtx, rentalID); err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				return ErrRentalNotFound
			}
			return fmt.Errorf("%w: RecordPayment - get rental record: %v", ErrInternal, err)
		}

		var err error
		payment, err = s.rentalRepo.CreatePayment(txCtx, &domain.Payment{
			RentalID: rentalID,
			Amount:   amount,
			Method:   method,
		})
		if err != nil {
			return fmt.Errorf("%w: RecordPayment - create payment: %v", ErrInternal, err)
		}

		if err := s.rentalRepo.MarkPaid(txCtx, rentalID); err != nil {
			return fmt.Errorf("%w: RecordPayment - mark paid: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrRentalNotFound) {
			s.logger.Error("RecordPayment: rental id=%d: %v", rentalID, err)
		}
		return nil, err
	}

	s.logger.Info("RecordPayment: payment id=%d recorded for rental id=%d", payment.ID, rentalID)
	return payment, nil
}

// GetPayments возвращает журнал платежей по rental record
func (s *Service) GetPayments(ctx context.Context, rentalID int64) ([]*domain.Payment, error) {
	list, err := s.rentalRepo.GetPaymentsByRentalID(ctx, rentalID)
	if err != nil {
		s.logger.Error("GetPayments: repository error for rental id=%d: %v", rentalID, err)
		return nil, fmt.Errorf("%w: GetPayments - repository error: %v", ErrInternal, err)
	}
	return list, nil
}
