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

	cancelEventHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/cancel_event"
	createEventHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/create_event"
	createInstructorHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/create_instructor"
	createSaleHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/create_sale"
	createStudentHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/create_student"
	deactivateInstructorHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/deactivate_instructor"
	deactivateStudentHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/deactivate_student"
	deleteEventHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/delete_event"
	getEventHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/get_event"
	getEventsHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/get_events"
	getInstructorHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/get_instructor"
	getInstructorsHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/get_instructors"
	getStudentHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/get_student"
	getStudentSalesHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/get_student_sales"
	getStudentsHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/get_students"
	suggestTimesHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/suggest_times"
	updateEventHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/update_event"
	updateInstructorHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/update_instructor"
	updateStudentHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/update_student"
	validateEventHandler "github.com/padelcore/PCM-ScheduleService/internal/api/handlers/validate_event"
	"github.com/padelcore/PCM-ScheduleService/internal/api/middleware"
	"github.com/padelcore/PCM-ScheduleService/internal/config"
	eventRepo "github.com/padelcore/PCM-ScheduleService/internal/infra/storage/event"
	instructorRepo "github.com/padelcore/PCM-ScheduleService/internal/infra/storage/instructor"
	saleRepo "github.com/padelcore/PCM-ScheduleService/internal/infra/storage/sale"
	studentRepo "github.com/padelcore/PCM-ScheduleService/internal/infra/storage/student"
	eventsService "github.com/padelcore/PCM-ScheduleService/internal/service/events"
	instructorsService "github.com/padelcore/PCM-ScheduleService/internal/service/instructors"
	salesService "github.com/padelcore/PCM-ScheduleService/internal/service/sales"
	studentsService "github.com/padelcore/PCM-ScheduleService/internal/service/students"
	createEventUC "github.com/padelcore/PCM-ScheduleService/internal/usecase/create_event"
	suggestTimesUC "github.com/padelcore/PCM-ScheduleService/internal/usecase/suggest_times"
	updateEventUC "github.com/padelcore/PCM-ScheduleService/internal/usecase/update_event"
	validateEventUC "github.com/padelcore/PCM-ScheduleService/internal/usecase/validate_event"
	"github.com/padelcore/PCM-ScheduleService/pkg/dbmetrics"
	"github.com/padelcore/PCM-ScheduleService/pkg/logger"
	"github.com/padelcore/PCM-ScheduleService/pkg/metrics"
	"github.com/padelcore/PCM-ScheduleService/pkg/simpletxmanager"
	"github.com/padelcore/PCM-ScheduleService/pkg/txmanager"
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

	log.Info("Starting PCM-ScheduleService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		eventRepository      *eventRepo.Repository
		instructorRepository *instructorRepo.Repository
		studentRepository    *studentRepo.Repository
		saleRepository       *saleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventRepository = eventRepo.NewRepository(wrappedDB)
		instructorRepository = instructorRepo.NewRepository(wrappedDB)
		studentRepository = studentRepo.NewRepository(wrappedDB)
		saleRepository = saleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventRepository = eventRepo.NewRepository(db)
		instructorRepository = instructorRepo.NewRepository(db)
		studentRepository = studentRepo.NewRepository(db)
		saleRepository = saleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	eventsSvc := eventsService.NewService(eventRepository, log)
	instructorsSvc := instructorsService.NewService(instructorRepository, log)
	studentsSvc := studentsService.NewService(studentRepository, log)
	salesSvc := salesService.NewService(saleRepository, studentRepository, log)

	// Инициализируем use cases
	createEventUseCase := createEventUC.NewUseCase(
		eventRepository,
		instructorRepository,
		txMgr,
		log,
	)

	updateEventUseCase := updateEventUC.NewUseCase(
		eventRepository,
		instructorRepository,
		txMgr,
		log,
	)

	validateEventUseCase := validateEventUC.NewUseCase(
		eventRepository,
		instructorRepository,
		log,
	)

	suggestTimesUseCase := suggestTimesUC.NewUseCase(
		eventRepository,
		instructorRepository,
		log,
	)

	// Инициализируем handlers
	createEvent := createEventHandler.NewHandler(createEventUseCase, log)
	updateEvent := updateEventHandler.NewHandler(updateEventUseCase, log)
	validateEvent := validateEventHandler.NewHandler(validateEventUseCase, log)
	suggestTimes := suggestTimesHandler.NewHandler(suggestTimesUseCase, log)
	getEvent := getEventHandler.NewHandler(eventsSvc, log)
	getEvents := getEventsHandler.NewHandler(eventsSvc, log)
	cancelEvent := cancelEventHandler.NewHandler(eventsSvc, log)
	deleteEvent := deleteEventHandler.NewHandler(eventsSvc, log)
	createInstructor := createInstructorHandler.NewHandler(instructorsSvc, log)
	getInstructor := getInstructorHandler.NewHandler(instructorsSvc, log)
	getInstructors := getInstructorsHandler.NewHandler(instructorsSvc, log)
	updateInstructor := updateInstructorHandler.NewHandler(instructorsSvc, log)
	deactivateInstructor := deactivateInstructorHandler.NewHandler(instructorsSvc, log)
	createStudent := createStudentHandler.NewHandler(studentsSvc, log)
	getStudent := getStudentHandler.NewHandler(studentsSvc, log)
	getStudents := getStudentsHandler.NewHandler(studentsSvc, log)
	updateStudent := updateStudentHandler.NewHandler(studentsSvc, log)
	deactivateStudent := deactivateStudentHandler.NewHandler(studentsSvc, log)
	createSale := createSaleHandler.NewHandler(salesSvc, log)
	getStudentSales := getStudentSalesHandler.NewHandler(salesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Проверка конфликтов расписания без записи в календарь
	api.HandleFunc("/events/validate", validateEvent.Handle).Methods(http.MethodPost)

	// Подбор свободных слотов на день
	api.HandleFunc("/events/suggested-times", suggestTimes.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание ---
	// Создание класса
	protected.HandleFunc("/events", createEvent.Handle).Methods(http.MethodPost)

	// Список классов с фильтрами
	protected.HandleFunc("/events", getEvents.Handle).Methods(http.MethodGet)

	// Получение класса по ID
	protected.HandleFunc("/events/{eventId}", getEvent.Handle).Methods(http.MethodGet)

	// Изменение класса
	protected.HandleFunc("/events/{eventId}", updateEvent.Handle).Methods(http.MethodPut)

	// Удаление класса
	protected.HandleFunc("/events/{eventId}", deleteEvent.Handle).Methods(http.MethodDelete)

	// Отмена класса
	protected.HandleFunc("/events/{eventId}/cancel", cancelEvent.Handle).Methods(http.MethodPatch)

	// --- Преподаватели ---
	protected.HandleFunc("/instructors", createInstructor.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/instructors", getInstructors.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/instructors/{instructorId}", getInstructor.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/instructors/{instructorId}", updateInstructor.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/instructors/{instructorId}", deactivateInstructor.Handle).Methods(http.MethodDelete)

	// --- Ученики ---
	protected.HandleFunc("/students", createStudent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/students", getStudents.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/students/{studentId}", getStudent.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/students/{studentId}", updateStudent.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/students/{studentId}", deactivateStudent.Handle).Methods(http.MethodDelete)

	// --- Продажи пакетов ---
	protected.HandleFunc("/sales", createSale.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/students/{studentId}/sales", getStudentSales.Handle).Methods(http.MethodGet)

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
