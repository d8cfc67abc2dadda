package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	bulkReservationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/bulk_reservations"
	cancelReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_reservation"
	editReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/edit_reservation"
	exportReservationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/export_reservations"
	getCustomerReservationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_customer_reservations"
	getReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_reservation"
	listCarsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_cars"
	manageCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/manage_car"
	markPaidHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/mark_paid"
	registerCustomerHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/register_customer"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/availability"
	"github.com/m04kA/SMC-RentalService/internal/config"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	customerRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customer"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	carsService "github.com/m04kA/SMC-RentalService/internal/service/cars"
	customersService "github.com/m04kA/SMC-RentalService/internal/service/customers"
	paymentsService "github.com/m04kA/SMC-RentalService/internal/service/payments"
	reservationsService "github.com/m04kA/SMC-RentalService/internal/service/reservations"
	checkAvailabilityUC "github.com/m04kA/SMC-RentalService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
	editReservationUC "github.com/m04kA/SMC-RentalService/internal/usecase/edit_reservation"
	"github.com/m04kA/SMC-RentalService/pkg/cache"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/migrate"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Накатываем миграции (если включено)
	if cfg.Database.AutoMigrate {
		if err := migrate.Up(cfg.Database.MigrationsDir, cfg.Database.DSN()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsDir)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаем Redis для кеша автопарка (если включен)
	var fleetCache carsService.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		fleetCache = cache.NewRedisCache(redisClient)
		log.Info("Redis fleet cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.FleetTTLSecs)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		rentalRepository      *rentalRepo.Repository
		carRepository         *carRepo.Repository
		customerRepository    *customerRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		rentalRepository = rentalRepo.NewRepository(wrappedDB)
		carRepository = carRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		rentalRepository = rentalRepo.NewRepository(db)
		carRepository = carRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Проверка доступности поверх репозитория бронирований
	checker := availability.NewChecker(reservationRepository)

	// Инициализируем сервисы
	carsSvc := carsService.NewService(
		carRepository,
		fleetCache,
		time.Duration(cfg.Redis.FleetTTLSecs)*time.Second,
		log,
	)
	customersSvc := customersService.NewService(customerRepository, log)
	paymentsSvc := paymentsService.NewService(
		rentalRepository,
		reservationRepository,
		txMgr,
		log,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		rentalRepository,
		paymentsSvc,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		rentalRepository,
		carRepository,
		customerRepository,
		checker,
		txMgr,
		log,
	)
	editReservationUseCase := editReservationUC.NewUseCase(
		reservationRepository,
		rentalRepository,
		carRepository,
		checker,
		txMgr,
		cfg.Rental.AdminEditEnforcePastDate,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(carRepository, checker, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	editReservation := editReservationHandler.NewHandler(editReservationUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getCustomerReservations := getCustomerReservationsHandler.NewHandler(reservationsSvc, log)
	bulkReservations := bulkReservationsHandler.NewHandler(reservationsSvc, log)
	exportReservations := exportReservationsHandler.NewHandler(reservationsSvc, log)
	markPaid := markPaidHandler.NewHandler(paymentsSvc, log)
	listCars := listCarsHandler.NewHandler(carsSvc, log)
	manageCar := manageCarHandler.NewHandler(carsSvc, log)
	registerCustomer := registerCustomerHandler.NewHandler(customersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация клиента
	api.HandleFunc("/customers", registerCustomer.Handle).Methods(http.MethodPost)

	// Автопарк и проверка доступности
	api.HandleFunc("/cars", listCars.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}", listCars.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (X-User-ID или X-Admin-Token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Server.AdminToken))

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", editReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/reservations", getCustomerReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (только X-Admin-Token)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// Управление автопарком
	admin.HandleFunc("/cars", manageCar.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/cars/{carId}", manageCar.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/cars/{carId}", manageCar.HandleDelete).Methods(http.MethodDelete)

	// Учёт оплат
	admin.HandleFunc("/rentals/{rentalId}/pay", markPaid.Handle).Methods(http.MethodPost)

	// Пакетные операции и экспорт
	admin.HandleFunc("/admin/reservations/bulk", bulkReservations.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/admin/reservations/export", exportReservations.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
