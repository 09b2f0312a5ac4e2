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

	cancelAppointmentHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/create_service"
	getAppointmentHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/get_available_slots"
	getDayScheduleHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/get_day_schedule"
	getMeHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/get_me"
	getUserAppointmentsHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/get_user_appointments"
	listServicesHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/list_services"
	loginHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/login"
	registerUserHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/register_user"
	"github.com/m04kA/Barbershop-BookingService/internal/api/middleware"
	"github.com/m04kA/Barbershop-BookingService/internal/config"
	appointmentRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/service"
	userRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/user"
	appointmentsService "github.com/m04kA/Barbershop-BookingService/internal/service/appointments"
	catalogService "github.com/m04kA/Barbershop-BookingService/internal/service/catalog"
	usersService "github.com/m04kA/Barbershop-BookingService/internal/service/users"
	createAppointmentUC "github.com/m04kA/Barbershop-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/Barbershop-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Barbershop-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Barbershop-BookingService/pkg/jwtauth"
	"github.com/m04kA/Barbershop-BookingService/pkg/logger"
	"github.com/m04kA/Barbershop-BookingService/pkg/metrics"
	"github.com/m04kA/Barbershop-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Barbershop-BookingService/pkg/txmanager"
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

	log.Info("Starting Barbershop-BookingService...")
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

	// Менеджер access-токенов
	tokenManager := jwtauth.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	// Рабочие часы салона
	workingHours := cfg.Schedule.WorkingHours()
	log.Info("Working hours: %02d:00 - %02d:00, slot step %d min",
		workingHours.OpenHour, workingHours.CloseHour, cfg.Schedule.SlotStepMinutes)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		serviceRepository     *serviceRepo.Repository
		userRepository        *userRepo.Repository
	)

	var txMgr createAppointmentUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	usersSvc := usersService.NewService(userRepository, tokenManager, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		txMgr,
		workingHours,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		workingHours,
		cfg.Schedule.SlotStepMinutes,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(usersSvc, log)
	login := loginHandler.NewHandler(usersSvc, log)
	getMe := getMeHandler.NewHandler(usersSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(appointmentsSvc, log)

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

	// Регистрация пользователя
	api.HandleFunc("/users", registerUser.Handle).Methods(http.MethodPost)

	// Выдача access-токена
	api.HandleFunc("/auth/token", login.Handle).Methods(http.MethodPost)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Свободные слоты для записи
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// --- Профиль ---
	// Текущий пользователь
	protected.HandleFunc("/users/me", getMe.Handle).Methods(http.MethodGet)

	// История записей пользователя
	protected.HandleFunc("/users/me/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Администрирование ---
	// Добавление услуги в каталог
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)

	// Расписание дня
	protected.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

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
