package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	customerRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customer"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	rentalRepo      RentalRepository
	carRepo         CarRepository
	customerRepo    CustomerRepository
	checker         AvailabilityChecker
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	rentalRepo RentalRepository,
	carRepo CarRepository,
	customerRepo CustomerRepository,
	checker AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		rentalRepo:      rentalRepo,
		carRepo:         carRepo,
		customerRepo:    customerRepo,
		checker:         checker,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка доступности и обе записи (reservation + rental record) выполняются
// в одной сериализуемой транзакции: два конкурентных создания на пересекающиеся
// даты не могут пройти оба - один из них увидит чужую запись (FOR UPDATE)
// либо будет отклонён exclusion constraint на уровне БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: customer=%d, car=%d, dates=%s..%s",
		req.CustomerID, req.CarID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим и валидируем диапазон дат
	rng, err := buildDateRange(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: date range validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateNotPast(rng, now); err != nil {
		uc.logger.Warn("CreateReservation: start date %s is in the past",
			rng.Start.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Проверяем существование клиента
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateReservation: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateReservation: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 4. Получаем автомобиль
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("CreateReservation: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CreateReservation: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// 5. Обслуживание - единственный статус, блокирующий бронирование
	if !car.IsBookable() {
		uc.logger.Warn("CreateReservation: car id=%d is under maintenance", req.CarID)
		return nil, ErrCarInMaintenance
	}

	var (
		created *domain.Reservation
		rental  *domain.RentalRecord
	)

	// 6. Проверка доступности и парная запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		available, err := uc.checker.IsAvailable(txCtx, req.CarID, rng, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("CreateReservation: car id=%d not available for %s..%s",
				req.CarID, rng.Start.Format(domain.DateFormat), rng.End.Format(domain.DateFormat))
			return ErrConflict
		}

		created, err = uc.reservationRepo.Create(txCtx, &domain.Reservation{
			CustomerID: req.CustomerID,
			CarID:      req.CarID,
			Dates:      rng,
		})
		if err != nil {
			// БД - финальный арбитр: пересекающийся диапазон, прошедший мимо
			// проверки, отклоняется exclusion constraint
			if errors.Is(err, reservationRepo.ErrDatesConflict) {
				return ErrConflict
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: create reservation: %v", ErrInternal, err)
		}

		// Парная rental record создаётся в той же транзакции: бронирование
		// без rental record не должно быть закоммичено ни при каком исходе
		rental, err = uc.rentalRepo.Create(txCtx, created.ID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create rental record for reservation id=%d: %v",
				created.ID, err)
			return fmt.Errorf("%w: create rental record: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	totalPrice := car.PriceFor(rng)

	uc.logger.Info("CreateReservation: successfully created reservation id=%d (rental id=%d, price=%.2f)",
		created.ID, rental.ID, totalPrice)

	return &Response{
		ID:         created.ID,
		CustomerID: created.CustomerID,
		CarID:      created.CarID,
		StartDate:  created.Dates.Start,
		EndDate:    created.Dates.End,
		Days:       created.Dates.Days(),
		TotalPrice: totalPrice,
		RentalID:   rental.ID,
		CreatedAt:  created.CreatedAt,
	}, nil
}
