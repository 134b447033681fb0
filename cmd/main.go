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

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_client_appointments"
	getProfessionalAppointmentsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_professional_appointments"
	getScheduleHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_schedule"
	updateAppointmentStatusHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_appointment_status"
	updateScheduleHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_schedule"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/config"
	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	scheduleRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/schedule"
	masterServiceClient "github.com/m04kA/Salon-BookingService/internal/integrations/masterservice"
	appointmentsService "github.com/m04kA/Salon-BookingService/internal/service/appointments"
	scheduleService "github.com/m04kA/Salon-BookingService/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/Salon-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Salon-BookingService/internal/worker"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/logger"
	"github.com/m04kA/Salon-BookingService/pkg/metrics"
	"github.com/m04kA/Salon-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Salon-BookingService/pkg/txmanager"
)

// realClock источник текущего времени для фонового воркера
type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// Подхватываем .env, если он есть (локальная разработка)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Секреты БД можно переопределить через окружение
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Salon-BookingService...")
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

	// Применяем миграции
	if cfg.Database.MigrationsPath != "" {
		if err := runMigrations(cfg.Database.MigrationsPath, cfg.Database.MigrateDSN()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Инициализируем интеграционного клиента
	masterClient := masterServiceClient.NewClient(
		cfg.MasterService.URL,
		time.Duration(cfg.MasterService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (MasterService=%s timeout=%ds)",
		cfg.MasterService.URL, cfg.MasterService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		masterClient,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		masterClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		masterClient,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getProfessionalAppointments := getProfessionalAppointmentsHandler.NewHandler(appointmentSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Запускаем фоновый воркер статусов (если включен)
	var statusSweeper *worker.StatusSweeper
	if cfg.Worker.Enabled {
		statusSweeper = worker.NewStatusSweeper(appointmentRepository, realClock{}, log)
		if err := statusSweeper.Start(cfg.Worker.Schedule); err != nil {
			log.Fatal("Failed to start status sweeper: %v", err)
		}
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request-id для трассировки
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Получение доступных слотов мастера
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение графика работы мастера
	api.HandleFunc("/professionals/{professionalId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Обновление статуса записи мастером
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Кабинет мастера ---
	// Список записей мастера
	protected.HandleFunc("/professionals/{professionalId}/appointments",
		getProfessionalAppointments.Handle).Methods(http.MethodGet)

	// Обновление графика работы
	protected.HandleFunc("/professionals/{professionalId}/schedule",
		updateSchedule.Handle).Methods(http.MethodPut)

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

	// Останавливаем фоновый воркер
	if statusSweeper != nil {
		statusSweeper.Stop()
	}

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

// runMigrations применяет все pending миграции из каталога path
func runMigrations(path, dsn string) error {
	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
