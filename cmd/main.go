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

	checkConflictsHandler "github.com/m04kA/Ferry-ScheduleService/internal/api/handlers/check_conflicts"
	createScheduleHandler "github.com/m04kA/Ferry-ScheduleService/internal/api/handlers/create_schedule"
	createTemplateHandler "github.com/m04kA/Ferry-ScheduleService/internal/api/handlers/create_template"
	deactivateTemplateHandler "github.com/m04kA/Ferry-ScheduleService/internal/api/handlers/deactivate_template"
	deleteScheduleHandler "github.com/m04kA/Ferry-ScheduleService/internal/api/handlers/delete_schedule"
	getOwnerTemplatesHandler "github.com/m04kA/Ferry-ScheduleService/internal/api/handlers/get_owner_templates"
	getScheduleHandler "github.com/m04kA/Ferry-ScheduleService/internal/api/handlers/get_schedule"
	getTemplateHandler "github.com/m04kA/Ferry-ScheduleService/internal/api/handlers/get_template"
	listSchedulesHandler "github.com/m04kA/Ferry-ScheduleService/internal/api/handlers/list_schedules"
	updateScheduleHandler "github.com/m04kA/Ferry-ScheduleService/internal/api/handlers/update_schedule"
	"github.com/m04kA/Ferry-ScheduleService/internal/api/middleware"
	"github.com/m04kA/Ferry-ScheduleService/internal/config"
	scheduleRepo "github.com/m04kA/Ferry-ScheduleService/internal/infra/storage/schedule"
	templateRepo "github.com/m04kA/Ferry-ScheduleService/internal/infra/storage/template"
	boatServiceClient "github.com/m04kA/Ferry-ScheduleService/internal/integrations/boatservice"
	bookingServiceClient "github.com/m04kA/Ferry-ScheduleService/internal/integrations/bookingservice"
	schedulesService "github.com/m04kA/Ferry-ScheduleService/internal/service/schedules"
	templatesService "github.com/m04kA/Ferry-ScheduleService/internal/service/templates"
	checkConflictsUC "github.com/m04kA/Ferry-ScheduleService/internal/usecase/check_conflicts"
	createScheduleUC "github.com/m04kA/Ferry-ScheduleService/internal/usecase/create_schedule"
	"github.com/m04kA/Ferry-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/Ferry-ScheduleService/pkg/logger"
	"github.com/m04kA/Ferry-ScheduleService/pkg/metrics"
	"github.com/m04kA/Ferry-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/Ferry-ScheduleService/pkg/txmanager"
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

	log.Info("Starting Ferry-ScheduleService...")
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

	// Инициализируем интеграционных клиентов
	boatClient := boatServiceClient.NewClient(
		cfg.BoatService.URL,
		time.Duration(cfg.BoatService.Timeout)*time.Second,
		log,
	)
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BoatService=%s timeout=%ds, BookingService=%s timeout=%ds)",
		cfg.BoatService.URL, cfg.BoatService.Timeout, cfg.BookingService.URL, cfg.BookingService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		scheduleRepository *scheduleRepo.Repository
		templateRepository *templateRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		templateRepository = templateRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db)
		templateRepository = templateRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	scheduleSvc := schedulesService.NewService(
		scheduleRepository,
		bookingClient,
		log,
	)
	templateSvc := templatesService.NewService(
		templateRepository,
		log,
	)

	// Инициализируем use cases
	createScheduleUseCase := createScheduleUC.NewUseCase(
		scheduleRepository,
		templateRepository,
		boatClient,
		txMgr,
		log,
	)

	checkConflictsUseCase := checkConflictsUC.NewUseCase(
		scheduleRepository,
		boatClient,
		log,
	)

	// Инициализируем handlers
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	checkConflicts := checkConflictsHandler.NewHandler(checkConflictsUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	listSchedules := listSchedulesHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(scheduleSvc, log)
	createTemplate := createTemplateHandler.NewHandler(templateSvc, log)
	getTemplate := getTemplateHandler.NewHandler(templateSvc, log)
	getOwnerTemplates := getOwnerTemplatesHandler.NewHandler(templateSvc, log)
	deactivateTemplate := deactivateTemplateHandler.NewHandler(templateSvc, log)

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

	// Все маршруты требуют X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписания ---
	// Создание расписания (с развёрткой повторения)
	protected.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)

	// Предпросмотр конфликтов без записи
	protected.HandleFunc("/schedules/check-conflicts", checkConflicts.Handle).Methods(http.MethodPost)

	// Получение расписания по ID
	protected.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)

	// Частичное обновление расписания
	protected.HandleFunc("/schedules/{scheduleId}", updateSchedule.Handle).Methods(http.MethodPatch)

	// Отмена расписания (мягкое удаление)
	protected.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// Список расписаний владельца с фильтрацией
	protected.HandleFunc("/owners/{ownerId}/schedules", listSchedules.Handle).Methods(http.MethodGet)

	// --- Шаблоны маршрутов ---
	// Создание шаблона
	protected.HandleFunc("/templates", createTemplate.Handle).Methods(http.MethodPost)

	// Получение шаблона по ID
	protected.HandleFunc("/templates/{templateId}", getTemplate.Handle).Methods(http.MethodGet)

	// Деактивация шаблона
	protected.HandleFunc("/templates/{templateId}", deactivateTemplate.Handle).Methods(http.MethodDelete)

	// Список шаблонов владельца
	protected.HandleFunc("/owners/{ownerId}/templates", getOwnerTemplates.Handle).Methods(http.MethodGet)

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
