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

	addPresetSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/add_preset_slots"
	addSlotHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/add_slot"
	adminLoginHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/admin_logout"
	adminSessionHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/admin_session"
	bookingSessionHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/booking_session"
	createBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_booking"
	deletePortfolioHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_portfolio"
	deleteSlotHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_slot"
	deleteSlotsForDateHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_slots_for_date"
	getBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_catalog"
	getPresetsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_presets"
	listAvailabilityHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_availability"
	listBookingsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_bookings"
	listPortfolioHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_portfolio"
	listSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_slots"
	updatePresetsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_presets"
	uploadPortfolioHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/upload_portfolio"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	sessionStore "github.com/m04kA/SMC-SalonBooking/internal/infra/cache/session"
	formStore "github.com/m04kA/SMC-SalonBooking/internal/infra/cache/wizard"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/objectstorage"
	availabilityRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/migrations"
	portfolioRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/portfolio"
	presetsRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/presets"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/amqpnotifier"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/webhook"
	authService "github.com/m04kA/SMC-SalonBooking/internal/service/auth"
	availabilityService "github.com/m04kA/SMC-SalonBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	portfolioService "github.com/m04kA/SMC-SalonBooking/internal/service/portfolio"
	presetsService "github.com/m04kA/SMC-SalonBooking/internal/service/presets"
	wizardService "github.com/m04kA/SMC-SalonBooking/internal/service/wizard"
	listAvailabilityUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/list_availability"
	submitBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Server.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Миграции до открытия пула
	if cfg.Database.AutoMigrate {
		if err := migrations.Up(cfg.Database.MigrateURL(), log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
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

	// Без метрик обёртка просто проксирует запросы
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Redis: админские сессии и незавершенные формы
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Хранилище изображений
	s3Client, err := objectstorage.NewS3Client(context.Background(), objectstorage.ClientConfig{
		Endpoint:     cfg.Storage.Endpoint,
		Region:       cfg.Storage.Region,
		AccessKey:    cfg.Storage.AccessKey,
		SecretKey:    cfg.Storage.SecretKey,
		UsePathStyle: cfg.Storage.UsePathStyle,
	})
	if err != nil {
		log.Fatal("Failed to create storage client: %v", err)
	}
	imageStorage := objectstorage.NewStorage(s3Client, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL, log)
	log.Info("Object storage initialized (bucket=%s, endpoint=%s)", cfg.Storage.Bucket, cfg.Storage.Endpoint)

	// Уведомления о новых бронированиях
	var notifiers []submitBookingUC.Notifier
	if cfg.Notifications.WebhookURL != "" {
		notifiers = append(notifiers, webhook.NewClient(
			cfg.Notifications.WebhookURL,
			time.Duration(cfg.Notifications.WebhookTimeout)*time.Second,
			log,
		))
		log.Info("Webhook notifications enabled (timeout=%ds)", cfg.Notifications.WebhookTimeout)
	}
	if cfg.Notifications.AMQPEnabled {
		notifiers = append(notifiers, amqpnotifier.NewPublisher(cfg.Notifications.AMQPURL, cfg.Notifications.AMQPQueue, log))
		log.Info("AMQP notifications enabled (queue=%s)", cfg.Notifications.AMQPQueue)
	}
	if len(notifiers) == 0 {
		log.Warn("No booking notification channels configured")
	}

	// Инициализируем репозитории
	slotRepository := availabilityRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	portfolioRepository := portfolioRepo.NewRepository(wrappedDB)
	presetsRepository := presetsRepo.NewRepository(wrappedDB)

	sessions := sessionStore.NewStore(redisClient)
	forms := formStore.NewStore(redisClient, cfg.Booking.WizardTTLDuration())

	salonCatalog := catalog.Default()

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		salonCatalog,
		imageStorage,
		notifiers,
		metricsCollector,
		location,
		log,
	)
	listAvailabilityUseCase := listAvailabilityUC.NewUseCase(slotRepository, location, log)

	// Инициализируем сервисы
	presetsSvc := presetsService.NewService(presetsRepository, txMgr, cfg.Booking.DefaultPresets, log)
	availabilitySvc := availabilityService.NewService(slotRepository, presetsSvc, txMgr, location, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	portfolioSvc := portfolioService.NewService(portfolioRepository, imageStorage, metricsCollector, log)
	authSvc := authService.NewService(authService.Config{
		PasswordHash: cfg.Admin.PasswordHash,
		JWTSecret:    cfg.Admin.JWTSecret,
		TokenTTL:     cfg.Admin.TokenTTLDuration(),
	}, sessions, log)
	wizardSvc := wizardService.NewService(
		forms,
		salonCatalog,
		slotRepository,
		submitBookingUseCase,
		cfg.Booking.WizardTTLDuration(),
		location,
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(salonCatalog)
	listAvailability := listAvailabilityHandler.NewHandler(listAvailabilityUseCase, log)
	listPortfolio := listPortfolioHandler.NewHandler(portfolioSvc, log)
	createBooking := createBookingHandler.NewHandler(submitBookingUseCase, cfg.Storage.MaxUploadBytes, log)
	bookingSession := bookingSessionHandler.NewHandler(wizardSvc, cfg.Storage.MaxUploadBytes, log)

	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	adminLogout := adminLogoutHandler.NewHandler(authSvc, log)
	adminSession := adminSessionHandler.NewHandler()
	listSlots := listSlotsHandler.NewHandler(availabilitySvc, log)
	addSlot := addSlotHandler.NewHandler(availabilitySvc, log)
	addPresetSlots := addPresetSlotsHandler.NewHandler(availabilitySvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(availabilitySvc, log)
	deleteSlotsForDate := deleteSlotsForDateHandler.NewHandler(availabilitySvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getPresets := getPresetsHandler.NewHandler(presetsSvc, log)
	updatePresets := updatePresetsHandler.NewHandler(presetsSvc, log)
	uploadPortfolio := uploadPortfolioHandler.NewHandler(portfolioSvc, cfg.Storage.MaxUploadBytes, log)
	deletePortfolio := deletePortfolioHandler.NewHandler(portfolioSvc, log)

	// Настраиваем роутер
	trustedProxies, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		log.Fatal("Invalid trusted proxies: %v", err)
	}

	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RealIP(trustedProxies))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", listAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/portfolio", listPortfolio.Handle).Methods(http.MethodGet)

	// Бронирование одной формой
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// --- Пошаговая форма ---
	api.HandleFunc("/booking-sessions", bookingSession.Start).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}", bookingSession.Get).Methods(http.MethodGet)
	api.HandleFunc("/booking-sessions/{sessionId}", bookingSession.Cancel).Methods(http.MethodDelete)
	api.HandleFunc("/booking-sessions/{sessionId}/service", bookingSession.SelectService).Methods(http.MethodPut)
	api.HandleFunc("/booking-sessions/{sessionId}/addons/{addonId}/toggle", bookingSession.ToggleAddon).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/datetime", bookingSession.SelectDateTime).Methods(http.MethodPut)
	api.HandleFunc("/booking-sessions/{sessionId}/details", bookingSession.SetDetails).Methods(http.MethodPut)
	api.HandleFunc("/booking-sessions/{sessionId}/next", bookingSession.Next).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/back", bookingSession.Back).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/submit", bookingSession.Submit).Methods(http.MethodPost)

	// Вход администратора, с ограничением попыток на IP
	loginLimiter := middleware.NewIPRateLimiter(cfg.Admin.LoginRateLimit, cfg.Admin.LoginBurst)
	go loginLimiter.RunCleanup(stopCh)
	api.Handle("/admin/login",
		middleware.RateLimit(loginLimiter, log)(http.HandlerFunc(adminLogin.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	admin.HandleFunc("/logout", adminLogout.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/session", adminSession.Handle).Methods(http.MethodGet)

	// --- Слоты ---
	admin.HandleFunc("/availability", listSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability", addSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability/presets", addPresetSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability/dates/{date}", deleteSlotsForDate.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/availability/{slotId:[0-9]+}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// --- Шаблоны времени ---
	admin.HandleFunc("/presets", getPresets.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/presets", updatePresets.Handle).Methods(http.MethodPut)

	// --- Портфолио ---
	admin.HandleFunc("/portfolio", uploadPortfolio.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/portfolio/{itemId}", deletePortfolio.Handle).Methods(http.MethodDelete)

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
		log.Info("Starting server on %s (timezone=%s)", addr, location)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи: статистику пула и очистку лимитера
	close(stopCh)

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
