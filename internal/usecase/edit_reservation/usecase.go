package edit_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// UseCase use case для редактирования бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	rentalRepo      RentalRepository
	carRepo         CarRepository
	checker         AvailabilityChecker
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger

	// enforceAdminPastDate: применять ли запрет прошедших дат к админам.
	// Для клиентов запрет действует всегда.
	enforceAdminPastDate bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	rentalRepo RentalRepository,
	carRepo CarRepository,
	checker AvailabilityChecker,
	txManager TransactionManager,
	enforceAdminPastDate bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:      reservationRepo,
		rentalRepo:           rentalRepo,
		carRepo:              carRepo,
		checker:              checker,
		txManager:            txManager,
		timeProvider:         &RealTimeProvider{},
		logger:               logger,
		enforceAdminPastDate: enforceAdminPastDate,
	}
}

// Execute выполняет use case редактирования бронирования.
//
// Правила доступа:
//   - клиент может править только своё бронирование, только неоплаченное
//     и только пока аренда не началась;
//   - админ правит любое бронирование без проверки владения и старта,
//     но проверка доступности выполняется всегда.
//
// Собственный диапазон бронирования исключается из проверки пересечений,
// иначе любая правка дат конфликтовала бы сама с собой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditReservation: id=%d, newCar=%d, newDates=%s..%s, admin=%t",
		req.ReservationID, req.NewCarID,
		req.NewStartDate.Format(domain.DateFormat), req.NewEndDate.Format(domain.DateFormat),
		req.Actor.Admin)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditReservation: validation failed: %v", err)
		return nil, err
	}

	rng, err := buildDateRange(req)
	if err != nil {
		uc.logger.Warn("EditReservation: date range validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 1. Получаем бронирование и проверяем права актора
	res, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("EditReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("EditReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if err := uc.checkActorRights(ctx, res, req.Actor, now); err != nil {
		return nil, err
	}

	// 2. Валидация новой даты начала: для клиентов всегда, для админов -
	// по конфигурации
	if !req.Actor.Admin || uc.enforceAdminPastDate {
		if rng.StartsBefore(now) {
			uc.logger.Warn("EditReservation: new start date %s is in the past",
				rng.Start.Format(domain.DateFormat))
			return nil, ErrPastDate
		}
	}

	// 3. Целевой автомобиль существует и не на обслуживании
	car, err := uc.carRepo.GetByID(ctx, req.NewCarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("EditReservation: car id=%d not found", req.NewCarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("EditReservation: failed to get car id=%d: %v", req.NewCarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	if !car.IsBookable() {
		uc.logger.Warn("EditReservation: car id=%d is under maintenance", req.NewCarID)
		return nil, ErrCarInMaintenance
	}

	// 4. Проверка доступности (исключая само бронирование) и запись
	// в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		available, err := uc.checker.IsAvailable(txCtx, req.NewCarID, rng, ptr.Ptr(req.ReservationID))
		if err != nil {
			uc.logger.Error("EditReservation: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("EditReservation: car id=%d not available for %s..%s",
				req.NewCarID, rng.Start.Format(domain.DateFormat), rng.End.Format(domain.DateFormat))
			return ErrConflict
		}

		if err := uc.reservationRepo.UpdateDatesAndCar(txCtx, req.ReservationID, req.NewCarID, rng); err != nil {
			if errors.Is(err, reservationRepo.ErrDatesConflict) {
				return ErrConflict
			}
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("EditReservation: failed to update reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: update reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("EditReservation: successfully updated reservation id=%d", req.ReservationID)

	return &Response{
		ID:         req.ReservationID,
		CustomerID: res.CustomerID,
		CarID:      req.NewCarID,
		StartDate:  rng.Start,
		EndDate:    rng.End,
		Days:       rng.Days(),
		TotalPrice: car.PriceFor(rng),
	}, nil
}

// checkActorRights применяет правила доступа к редактированию.
// Чужое бронирование для клиента отдаётся как NotFound, чтобы не раскрывать
// его существование. Оплаченные и уже начавшиеся бронирования клиент править
// не может; админ обходит владение и старт, но не оплату дат (правила оплаты
// к админу не применяются).
func (uc *UseCase) checkActorRights(ctx context.Context, res *domain.Reservation, actor domain.Actor, now time.Time) error {
	if actor.Admin {
		return nil
	}

	if !actor.Owns(res) {
		uc.logger.Warn("EditReservation: reservation id=%d is not owned by customer id=%d",
			res.ID, actor.CustomerID)
		return ErrReservationNotFound
	}

	record, err := uc.rentalRepo.GetByReservationID(ctx, res.ID)
	if err != nil && !errors.Is(err, rentalRepo.ErrRentalNotFound) {
		uc.logger.Error("EditReservation: failed to get rental record for reservation id=%d: %v", res.ID, err)
		return fmt.Errorf("%w: failed to get rental record: %v", ErrInternal, err)
	}

	// Отсутствие rental record у старых данных трактуем как "не оплачено"
	if record != nil && record.Paid {
		uc.logger.Warn("EditReservation: reservation id=%d is already paid", res.ID)
		return ErrForbidden
	}

	if res.HasStarted(now) {
		uc.logger.Warn("EditReservation: reservation id=%d has already started", res.ID)
		return ErrForbidden
	}

	return nil
}
