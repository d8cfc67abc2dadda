package cars

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-RentalService/pkg/cache"
)

const (
	cacheKeyFleet       = "cars:fleet"
	cacheKeyFleetPrefix = "cars:fleet:status:"
)

// Service сервис управления автопарком. Список автомобилей кешируется
// в Redis (если кеш подключен); любая запись инвалидирует кеш.
type Service struct {
	repo     CarRepository
	cache    Cache // nil, если Redis выключен
	cacheTTL time.Duration
	logger   Logger
}

// NewService создает новый экземпляр сервиса автопарка
func NewService(repo CarRepository, fleetCache Cache, cacheTTL time.Duration, logger Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    fleetCache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// List возвращает автопарк, опционально отфильтрованный по статусу
func (s *Service) List(ctx context.Context, status *domain.CarStatus) ([]*domain.Car, error) {
	key := cacheKeyFleet
	if status != nil {
		key = cacheKeyFleetPrefix + string(*status)
	}

	if s.cache != nil {
		var cached []*domain.Car
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			s.logger.Info("List: cache hit, key=%s, %d cars", key, len(cached))
			return cached, nil
		}
		if !errors.Is(err, cache.Nil) {
			// Кеш недоступен - идём в БД, это не ошибка запроса
			s.logger.Warn("List: cache get failed for key=%s: %v", key, err)
		}
	}

	list, err := s.repo.List(ctx, status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Save(ctx, key, list, s.cacheTTL); err != nil {
			s.logger.Warn("List: cache save failed for key=%s: %v", key, err)
		}
	}

	return list, nil
}

// Get возвращает автомобиль по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Car, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Get: car id=%d not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("Get: repository error for car id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return c, nil
}

// Create добавляет автомобиль в автопарк (только админ)
func (s *Service) Create(ctx context.Context, c *domain.Car) (*domain.Car, error) {
	s.logger.Info("Create: car %s %s, plate=%s", c.Brand, c.Model, c.LicensePlate)

	if err := validateCar(c); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if c.Status == "" {
		c.Status = domain.CarStatusAvailable
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, carRepo.ErrPlateTaken) {
			s.logger.Warn("Create: plate %s already registered", c.LicensePlate)
			return nil, ErrPlateTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.invalidateFleetCache(ctx)
	s.logger.Info("Create: car created, id=%d", created.ID)
	return created, nil
}

// Update обновляет данные автомобиля (только админ)
func (s *Service) Update(ctx context.Context, c *domain.Car) (*domain.Car, error) {
	s.logger.Info("Update: car id=%d", c.ID)

	if err := validateCar(c); err != nil {
		s.logger.Warn("Update: validation failed for car id=%d: %v", c.ID, err)
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, carRepo.ErrCarNotFound):
			s.logger.Warn("Update: car id=%d not found", c.ID)
			return nil, ErrCarNotFound
		case errors.Is(err, carRepo.ErrPlateTaken):
			s.logger.Warn("Update: plate %s already registered", c.LicensePlate)
			return nil, ErrPlateTaken
		default:
			s.logger.Error("Update: repository error for car id=%d: %v", c.ID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.invalidateFleetCache(ctx)
	return s.Get(ctx, c.ID)
}

// Delete удаляет автомобиль из автопарка (только админ).
// Автомобиль с бронированиями удалить нельзя.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: car id=%d", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, carRepo.ErrCarNotFound):
			s.logger.Warn("Delete: car id=%d not found", id)
			return ErrCarNotFound
		case errors.Is(err, carRepo.ErrHasReservations):
			s.logger.Warn("Delete: car id=%d has reservations", id)
			return ErrHasReservations
		default:
			s.logger.Error("Delete: repository error for car id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.invalidateFleetCache(ctx)
	s.logger.Info("Delete: car id=%d deleted", id)
	return nil
}

// invalidateFleetCache сбрасывает все ключи списка автопарка
func (s *Service) invalidateFleetCache(ctx context.Context) {
	if s.cache == nil {
		return
	}

	keys := []string{cacheKeyFleet}
	for _, status := range []domain.CarStatus{
		domain.CarStatusAvailable,
		domain.CarStatusReserved,
		domain.CarStatusMaintenance,
	} {
		keys = append(keys, cacheKeyFleetPrefix+string(status))
	}

	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("invalidateFleetCache: failed to delete key=%s: %v", key, err)
		}
	}
}
