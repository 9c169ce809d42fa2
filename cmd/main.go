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

	"github.com/m0rzh/BAP-AvailabilityService/internal/api/handlers"
	getAvailableSlotsHandler "github.com/m0rzh/BAP-AvailabilityService/internal/api/handlers/get_available_slots"
	getBusinessClosuresHandler "github.com/m0rzh/BAP-AvailabilityService/internal/api/handlers/get_business_closures"
	"github.com/m0rzh/BAP-AvailabilityService/internal/api/middleware"
	"github.com/m0rzh/BAP-AvailabilityService/internal/availability"
	"github.com/m0rzh/BAP-AvailabilityService/internal/config"
	appointmentRepo "github.com/m0rzh/BAP-AvailabilityService/internal/infra/storage/appointment"
	closureRepo "github.com/m0rzh/BAP-AvailabilityService/internal/infra/storage/closure"
	businessServiceClient "github.com/m0rzh/BAP-AvailabilityService/internal/integrations/businessservice"
	closuresService "github.com/m0rzh/BAP-AvailabilityService/internal/service/closures"
	getAvailableSlotsUC "github.com/m0rzh/BAP-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/dbmetrics"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/logger"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/metrics"
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

	log.Info("Starting BAP-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиента BusinessService с LRU кешем профилей
	businessClient, err := businessServiceClient.NewClient(
		cfg.BusinessService.URL,
		time.Duration(cfg.BusinessService.Timeout)*time.Second,
		cfg.BusinessService.CacheSize,
		time.Duration(cfg.BusinessService.CacheTTLSeconds)*time.Second,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize BusinessService client: %v", err)
	}
	log.Info("BusinessService client initialized (url=%s, timeout=%ds, cache_size=%d)",
		cfg.BusinessService.URL, cfg.BusinessService.Timeout, cfg.BusinessService.CacheSize)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		closureRepository     *closureRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		closureRepository = closureRepo.NewRepository(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		closureRepository = closureRepo.NewRepository(db)
	}

	// Инициализируем движок доступности
	engine := availability.NewEngine(log)

	// Инициализируем сервисы
	closuresSvc := closuresService.NewService(closureRepository, businessClient, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		closureRepository,
		businessClient,
		engine,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBusinessClosures := getBusinessClosuresHandler.NewHandler(closuresSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// ID запроса присваивается всем запросам для трассировки логов
	r.Use(middleware.RequestID)

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

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов на дату
	api.HandleFunc("/businesses/{businessId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Список закрытий бизнеса за период (для дашборда)
	protected.HandleFunc("/businesses/{businessId}/closures",
		getBusinessClosures.Handle).Methods(http.MethodGet)

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
