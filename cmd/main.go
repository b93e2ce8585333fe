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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addHolidayHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/add_holiday"
	cancelBookingHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/get_catalog"
	listHolidaysHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/list_holidays"
	listReservationsHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/list_reservations"
	markOutcomeHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/mark_outcome"
	queryBookingsHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/query_bookings"
	removeHolidayHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/remove_holiday"
	rescheduleHandler "github.com/m04kA/asperus-scheduler/internal/api/handlers/reschedule_reservation"
	"github.com/m04kA/asperus-scheduler/internal/api/middleware"
	"github.com/m04kA/asperus-scheduler/internal/config"
	"github.com/m04kA/asperus-scheduler/internal/infra/events"
	businessConfigRepo "github.com/m04kA/asperus-scheduler/internal/infra/storage/businessconfig"
	holidayRepo "github.com/m04kA/asperus-scheduler/internal/infra/storage/holiday"
	reservationRepo "github.com/m04kA/asperus-scheduler/internal/infra/storage/reservation"
	businessHoursService "github.com/m04kA/asperus-scheduler/internal/service/businesshours"
	holidaysService "github.com/m04kA/asperus-scheduler/internal/service/holidays"
	"github.com/m04kA/asperus-scheduler/internal/service/notifier"
	reservationsService "github.com/m04kA/asperus-scheduler/internal/service/reservations"
	createBookingUC "github.com/m04kA/asperus-scheduler/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/asperus-scheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
	"github.com/m04kA/asperus-scheduler/pkg/dbmetrics"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
	"github.com/m04kA/asperus-scheduler/pkg/metrics"
	"github.com/m04kA/asperus-scheduler/pkg/ratelimit"
	"github.com/m04kA/asperus-scheduler/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("SCHEDULER_CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting asperus-scheduler...")
	log.Info("Configuration loaded from %s", configPath)

	// Календарь бизнеса в единственном часовом поясе
	calendar, err := civiltime.LoadCalendar(civiltime.SystemClock{}, cfg.Calendar.Timezone)
	if err != nil {
		log.Fatal("Failed to load calendar: %v", err)
	}
	log.Info("Civil timezone: %s", cfg.Calendar.Timezone)

	// Инициализируем метрики (если включены); nil *Metrics работает как no-op
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Публикация событий бронирований
	var publisher notifier.Publisher = events.NopPublisher{}
	if cfg.Events.Enabled {
		rabbit, err := events.NewRabbitPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
		log.Info("Reservation events published to exchange %q", cfg.Events.Exchange)
	}

	// Ограничитель частоты для self-service эндпоинтов
	var limiter middleware.Limiter
	if cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		if cfg.Redis.Enabled {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()

			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := rdb.Ping(pingCtx).Err()
			cancel()
			if err != nil {
				log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
			}
			limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Requests, window, cfg.Redis.Prefix)
			log.Info("Rate limit: %d requests per %s (redis %s)", cfg.RateLimit.Requests, window, cfg.Redis.Addr)
		} else {
			limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Requests, window)
			log.Info("Rate limit: %d requests per %s (in-process)", cfg.RateLimit.Requests, window)
		}
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	holidayRepository := holidayRepo.NewRepository(wrappedDB)
	businessConfigRepository := businessConfigRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	eventNotifier := notifier.New(publisher, calendar, metricsCollector, log)
	holidaySvc := holidaysService.NewService(holidayRepository, calendar, log)
	businessHoursSvc := businessHoursService.NewService(businessConfigRepository, log)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		holidaySvc,
		calendar,
		txMgr,
		eventNotifier,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		holidaySvc,
		calendar,
		txMgr,
		eventNotifier,
		metricsCollector,
		log,
		createBookingUC.Options{UniqueCodePerContact: cfg.Booking.UniqueCodePerContact},
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		holidaySvc,
		businessHoursSvc,
		calendar,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(reservationSvc, log)
	queryBookings := queryBookingsHandler.NewHandler(reservationSvc, log)
	getCatalog := getCatalogHandler.NewHandler(businessHoursSvc, log)
	listHolidays := listHolidaysHandler.NewHandler(holidaySvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	markOutcome := markOutcomeHandler.NewHandler(reservationSvc, log)
	reschedule := rescheduleHandler.NewHandler(reservationSvc, log)
	addHoliday := addHolidayHandler.NewHandler(holidaySvc, log)
	removeHoliday := removeHolidayHandler.NewHandler(holidaySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/holidays", listHolidays.Handle).Methods(http.MethodGet)

	// Self-service по коду доступа, с ограничением частоты
	selfService := api.PathPrefix("/bookings").Subrouter()
	if limiter != nil {
		selfService.Use(middleware.RateLimit(limiter, log))
	}
	selfService.HandleFunc("/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	selfService.HandleFunc("/lookup", queryBookings.Handle).Methods(http.MethodPost)

	// ============================================================
	// OPERATOR ROUTES (требуют X-Operator-Key header)
	// ============================================================

	operator := api.PathPrefix("").Subrouter()
	operator.Use(middleware.OperatorAuth(cfg.Operator.APIKey, log))

	operator.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	operator.HandleFunc("/reservations/{id}/outcome", markOutcome.Handle).Methods(http.MethodPatch)
	operator.HandleFunc("/reservations/{id}/reschedule", reschedule.Handle).Methods(http.MethodPatch)
	operator.HandleFunc("/holidays", addHoliday.Handle).Methods(http.MethodPost)
	operator.HandleFunc("/holidays/{date}", removeHoliday.Handle).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

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
