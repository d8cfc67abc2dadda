package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
)

// Request модель запроса проверки доступности
type Request struct {
	CarID     int64
	StartDate time.Time
	EndDate   time.Time
}

// Response модель ответа: доступность и расчёт стоимости.
// Ответ - подсказка для отображения; окончательное решение принимает
// create_reservation в транзакции, цена не фиксируется до бронирования.
type Response struct {
	CarID      int64
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Available  bool
	DailyPrice float64
	TotalPrice float64
}

// UseCase use case проверки доступности автомобиля с расчётом цены
type UseCase struct {
	carRepo CarRepository
	checker AvailabilityChecker
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(carRepo CarRepository, checker AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		carRepo: carRepo,
		checker: checker,
		logger:  logger,
	}
}

// Execute выполняет проверку доступности без блокировок (чтение для UI)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CarID <= 0 {
		return nil, fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	rng, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid range for car=%d: %v", req.CarID, err)
		return nil, ErrInvalidRange
	}

	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("CheckAvailability: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	available := car.IsBookable()
	if available {
		available, err = uc.checker.IsAvailable(ctx, req.CarID, rng, nil)
		if err != nil {
			uc.logger.Error("CheckAvailability: availability check failed for car=%d: %v", req.CarID, err)
			return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CheckAvailability: car=%d, dates=%s..%s, available=%t",
		req.CarID, rng.Start.Format(domain.DateFormat), rng.End.Format(domain.DateFormat), available)

	return &Response{
		CarID:      car.ID,
		StartDate:  rng.Start,
		EndDate:    rng.End,
		Days:       rng.Days(),
		Available:  available,
		DailyPrice: car.DailyPrice,
		TotalPrice: car.PriceFor(rng),
	}, nil
}
