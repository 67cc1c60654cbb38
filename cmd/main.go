package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAvailabilityHandler "github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers/get_availability"
	getBlockedDatesHandler "github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers/get_blocked_dates"
	getMeasurementHandler "github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers/get_measurement"
	getProviderPolicyHandler "github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers/get_provider_policy"
	putMeasurementHandler "github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers/put_measurement"
	submitBookingHandler "github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers/submit_booking"
	updateBlockedDatesHandler "github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers/update_blocked_dates"
	updateProviderPolicyHandler "github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers/update_provider_policy"
	"github.com/m04kA/NutriCare-BookingEngine/internal/api/middleware"
	"github.com/m04kA/NutriCare-BookingEngine/internal/auth"
	"github.com/m04kA/NutriCare-BookingEngine/internal/config"
	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	blockedDatesRepo "github.com/m04kA/NutriCare-BookingEngine/internal/infra/storage/blockeddates"
	measurementsRepo "github.com/m04kA/NutriCare-BookingEngine/internal/infra/storage/measurements"
	policyRepo "github.com/m04kA/NutriCare-BookingEngine/internal/infra/storage/schedulepolicy"
	"github.com/m04kA/NutriCare-BookingEngine/internal/integrations/appointmentapi"
	"github.com/m04kA/NutriCare-BookingEngine/internal/orchestrator"
	blockedDatesService "github.com/m04kA/NutriCare-BookingEngine/internal/service/blockeddates"
	measurementsService "github.com/m04kA/NutriCare-BookingEngine/internal/service/measurements"
	policyService "github.com/m04kA/NutriCare-BookingEngine/internal/service/schedulepolicy"
	getAvailabilityUC "github.com/m04kA/NutriCare-BookingEngine/internal/usecase/get_availability"
	submitBookingUC "github.com/m04kA/NutriCare-BookingEngine/internal/usecase/submit_booking"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/dbmetrics"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/logger"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/metrics"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/simpletxmanager"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/txmanager"
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

	log.Info("Starting NutriCare-BookingEngine...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
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

	// Клиент внешнего хранилища записей на приём
	var upstreamMetrics appointmentapi.Metrics
	if cfg.Metrics.Enabled {
		upstreamMetrics = metricsCollector
	}
	appointmentClient := appointmentapi.NewClient(
		cfg.AppointmentAPI.URL,
		time.Duration(cfg.AppointmentAPI.Timeout)*time.Second,
		log,
		upstreamMetrics,
	)
	log.Info("Appointment store client initialized (url=%s, timeout=%ds)",
		cfg.AppointmentAPI.URL, cfg.AppointmentAPI.Timeout)

	// Инициализируем репозитории и менеджер транзакций (с метриками или без)
	var (
		policyRepository       *policyRepo.Repository
		blockedRepository      *blockedDatesRepo.Repository
		measurementsRepository *measurementsRepo.Repository
		txMgr                  blockedDatesService.TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		policyRepository = policyRepo.NewRepository(wrappedDB)
		blockedRepository = blockedDatesRepo.NewRepository(wrappedDB)
		measurementsRepository = measurementsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		policyRepository = policyRepo.NewRepository(db)
		blockedRepository = blockedDatesRepo.NewRepository(db)
		measurementsRepository = measurementsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Политика рабочих часов по умолчанию из секции [booking]
	defaultMask, err := policyService.ParseWeekdays(cfg.Booking.DefaultWeekdays)
	if err != nil {
		log.Fatal("Invalid booking.default_weekdays in config: %v", err)
	}
	defaultPolicy, err := domain.NewWorkingHoursPolicy(0, cfg.Booking.DefaultStartHour,
		cfg.Booking.DefaultEndHour, cfg.Booking.DefaultSlotMinutes, defaultMask)
	if err != nil {
		log.Fatal("Invalid [booking] defaults in config: %v", err)
	}
	log.Info("Default working-hours policy: %02d:00-%02d:00, slot=%dm",
		defaultPolicy.StartHour, defaultPolicy.EndHour, defaultPolicy.SlotMinutes)

	// Реестр оркестраторов: по одному на диетолога, создаются лениво.
	// Политика берётся из БД, при отсутствии - политика по умолчанию.
	registry := orchestrator.NewRegistry(func(ctx context.Context, providerID int64) (*orchestrator.Orchestrator, error) {
		policy, err := policyRepository.GetByProvider(ctx, providerID)
		if err != nil {
			if !errors.Is(err, policyRepo.ErrPolicyNotFound) {
				return nil, err
			}
			policy = defaultPolicy.ForProvider(providerID)
		}
		return orchestrator.New(providerID, policy, appointmentClient, auth.ContextTokenSource{}, blockedRepository, log), nil
	})

	// Инициализируем сервисы
	policySvc := policyService.NewService(policyRepository, registry, defaultPolicy, log)
	blockedSvc := blockedDatesService.NewService(blockedRepository, txMgr, registry, log)
	measurementsSvc := measurementsService.NewService(measurementsRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(registry, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(registry, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getProviderPolicy := getProviderPolicyHandler.NewHandler(policySvc, log)
	updateProviderPolicy := updateProviderPolicyHandler.NewHandler(policySvc, log)
	getBlockedDates := getBlockedDatesHandler.NewHandler(blockedSvc, log)
	updateBlockedDates := updateBlockedDatesHandler.NewHandler(blockedSvc, log)
	getMeasurement := getMeasurementHandler.NewHandler(measurementsSvc, log)
	putMeasurement := putMeasurementHandler.NewHandler(measurementsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Политика рабочих часов диетолога
	api.HandleFunc("/providers/{providerId}/policy",
		getProviderPolicy.Handle).Methods(http.MethodGet)

	// Заблокированные даты диетолога
	api.HandleFunc("/providers/{providerId}/blocked-dates",
		getBlockedDates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Слоты и сводка доступности на дату
	protected.HandleFunc("/providers/{providerId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Бронирование слота
	protected.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)

	// Управление политикой рабочих часов
	protected.HandleFunc("/providers/{providerId}/policy",
		updateProviderPolicy.Handle).Methods(http.MethodPut)

	// Управление заблокированными датами
	protected.HandleFunc("/providers/{providerId}/blocked-dates",
		updateBlockedDates.Handle).Methods(http.MethodPut)

	// Показатели пациента
	protected.HandleFunc("/patients/{patientId}/measurements/{metric}",
		getMeasurement.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{patientId}/measurements/{metric}",
		putMeasurement.Handle).Methods(http.MethodPut)

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
