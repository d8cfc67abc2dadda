package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями: чтение с проверкой прав,
// удаление с правилами допуска и пакетные админские операции
type Service struct {
	reservationRepo ReservationRepository
	rentalRepo      RentalRepository
	payments        PaymentTracker
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	rentalRepo RentalRepository,
	payments PaymentTracker,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		rentalRepo:      rentalRepo,
		payments:        payments,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID.
// Клиент видит только свои бронирования (чужие отдаются как NotFound),
// админ - любые.
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for actor (customer=%d, admin=%t)",
		id, actor.CustomerID, actor.Admin)

	res, err := s.getVisible(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	rental, err := s.rentalRepo.GetByReservationID(ctx, id)
	if err != nil && !errors.Is(err, rentalRepo.ErrRentalNotFound) {
		s.logger.Error("GetByID: failed to get rental record for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - rental record: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res, rental, s.timeProvider.Now()), nil
}

// GetCustomerReservations получает бронирования клиента.
// Клиент может запрашивать только свой список, админ - любой.
func (s *Service) GetCustomerReservations(ctx context.Context, customerID int64, actor domain.Actor) (*models.ReservationListResponse, error) {
	s.logger.Info("GetCustomerReservations: customer=%d, actor (customer=%d, admin=%t)",
		customerID, actor.CustomerID, actor.Admin)

	if !actor.Admin && actor.CustomerID != customerID {
		s.logger.Warn("GetCustomerReservations: customer id=%d requested foreign list of customer id=%d",
			actor.CustomerID, customerID)
		return nil, ErrAccessDenied
	}

	list, err := s.reservationRepo.GetByFilter(ctx, domain.ReservationsFilter{CustomerID: &customerID})
	if err != nil {
		s.logger.Error("GetCustomerReservations: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerReservations - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	resp := &models.ReservationListResponse{
		Reservations: make([]models.ReservationResponse, 0, len(list)),
	}

	for _, res := range list {
		rental, err := s.rentalRepo.GetByReservationID(ctx, res.ID)
		if err != nil && !errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Error("GetCustomerReservations: failed to get rental record for reservation id=%d: %v",
				res.ID, err)
			return nil, fmt.Errorf("%w: GetCustomerReservations - rental record: %v", ErrInternal, err)
		}
		resp.Reservations = append(resp.Reservations, *models.FromDomainReservation(res, rental, now))
	}

	s.logger.Info("GetCustomerReservations: fetched %d reservations for customer=%d",
		len(resp.Reservations), customerID)
	return resp, nil
}

// Delete удаляет бронирование вместе с его rental record.
//
// Клиент может удалить только своё, неоплаченное и ещё не начавшееся
// бронирование; админ - любое. Обе записи удаляются в одной транзакции
// (сначала rental record - на ней ссылка на бронирование); при частичном
// сбое транзакция откатывается и бронирование остаётся нетронутым.
func (s *Service) Delete(ctx context.Context, id int64, actor domain.Actor) error {
	s.logger.Info("Delete: reservation id=%d by actor (customer=%d, admin=%t)",
		id, actor.CustomerID, actor.Admin)

	res, err := s.getVisible(ctx, id, actor)
	if err != nil {
		return err
	}

	if !actor.Admin {
		rental, err := s.rentalRepo.GetByReservationID(ctx, id)
		if err != nil && !errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Error("Delete: failed to get rental record for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - rental record: %v", ErrInternal, err)
		}

		if rental != nil && rental.Paid {
			s.logger.Warn("Delete: reservation id=%d is already paid", id)
			return ErrForbidden
		}

		if res.HasStarted(s.timeProvider.Now()) {
			s.logger.Warn("Delete: reservation id=%d has already started", id)
			return ErrForbidden
		}
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.rentalRepo.DeleteByReservationID(txCtx, id); err != nil {
			return fmt.Errorf("%w: Delete - delete rental record: %v", ErrInternal, err)
		}
		if err := s.reservationRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Delete - delete reservation: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// BulkMarkPaid помечает бронирования оплаченными (только админ).
// Каждый id обрабатывается независимо: ошибка одного элемента не прерывает
// пакет, итог возвращается счётчиками. Отсутствующая rental record
// восстанавливается через repair-путь трекера оплат.
func (s *Service) BulkMarkPaid(ctx context.Context, ids []int64) *models.BulkResult {
	s.logger.Info("BulkMarkPaid: processing %d reservations", len(ids))

	result := &models.BulkResult{}

	for _, id := range ids {
		rental, err := s.payments.EnsureRentalRecord(ctx, id)
		if err != nil {
			s.logger.Warn("BulkMarkPaid: reservation id=%d skipped: %v", id, err)
			result.Failed++
			continue
		}

		if err := s.payments.MarkPaid(ctx, rental.ID); err != nil {
			s.logger.Warn("BulkMarkPaid: reservation id=%d mark paid failed: %v", id, err)
			result.Failed++
			continue
		}

		result.Succeeded++
	}

	s.logger.Info("BulkMarkPaid: done, succeeded=%d, failed=%d", result.Succeeded, result.Failed)
	return result
}

// BulkDelete удаляет бронирования (только админ).
// Семантика пакета та же, что и у BulkMarkPaid.
func (s *Service) BulkDelete(ctx context.Context, ids []int64) *models.BulkResult {
	s.logger.Info("BulkDelete: processing %d reservations", len(ids))

	result := &models.BulkResult{}

	for _, id := range ids {
		if err := s.Delete(ctx, id, domain.AdminActor()); err != nil {
			s.logger.Warn("BulkDelete: reservation id=%d skipped: %v", id, err)
			result.Failed++
			continue
		}
		result.Succeeded++
	}

	s.logger.Info("BulkDelete: done, succeeded=%d, failed=%d", result.Succeeded, result.Failed)
	return result
}

// GetReport возвращает строки админского отчёта по всем бронированиям
func (s *Service) GetReport(ctx context.Context) ([]*reservationRepo.ReportRow, error) {
	report, err := s.reservationRepo.GetReport(ctx)
	if err != nil {
		s.logger.Error("GetReport: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetReport - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetReport: fetched %d rows", len(report))
	return report, nil
}

// getVisible получает бронирование с учётом видимости для актора:
// клиенту чужое бронирование отдаётся как NotFound
func (s *Service) getVisible(ctx context.Context, id int64, actor domain.Actor) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("getVisible: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("getVisible: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getVisible - repository error: %v", ErrInternal, err)
	}

	if !actor.Admin && !actor.Owns(res) {
		s.logger.Warn("getVisible: reservation id=%d is not owned by customer id=%d", id, actor.CustomerID)
		return nil, ErrReservationNotFound
	}

	return res, nil
}
