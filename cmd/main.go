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

	"github.com/m04kA/SMC-SalonBot/internal/bot"
	"github.com/m04kA/SMC-SalonBot/internal/config"
	"github.com/m04kA/SMC-SalonBot/internal/domain"
	"github.com/m04kA/SMC-SalonBot/internal/infra/storage/history"
	registryRepo "github.com/m04kA/SMC-SalonBot/internal/infra/storage/registry"
	sessionsRepo "github.com/m04kA/SMC-SalonBot/internal/infra/storage/sessions"
	telegramClient "github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
	"github.com/m04kA/SMC-SalonBot/internal/service/adminflow"
	"github.com/m04kA/SMC-SalonBot/internal/service/userflow"
	createBookingUC "github.com/m04kA/SMC-SalonBot/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBot/internal/usecase/get_available_slots"
	resolveBookingUC "github.com/m04kA/SMC-SalonBot/internal/usecase/resolve_booking"
	"github.com/m04kA/SMC-SalonBot/pkg/logger"
	"github.com/m04kA/SMC-SalonBot/pkg/metrics"
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

	log.Info("Starting SMC-SalonBot...")
	log.Info("Configuration loaded from config.toml")

	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Журнал истории: PostgreSQL или заглушка, по конфигурации
	var journal resolveBookingUC.Journal = history.NewNoopJournal()
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		journalRepo := history.NewRepository(db)
		journal = journalRepo

		// Сводка по журналу за последние сутки, чисто информационно
		statsCtx, statsCancel := context.WithTimeout(context.Background(), 5*time.Second)
		counts, err := journalRepo.CountSince(statsCtx, time.Now().AddDate(0, 0, -1))
		statsCancel()
		if err != nil {
			log.Warn("Failed to read journal stats: %v", err)
		} else {
			log.Info("Journal stats for last 24h: accepted=%d, rejected=%d",
				counts[domain.StatusAccepted], counts[domain.StatusRejected])
		}
	} else {
		log.Info("History journal disabled, running fully in-memory")
	}

	// Инициализируем Telegram-клиента
	token := os.Getenv(cfg.Telegram.TokenEnv)
	if token == "" {
		log.Fatal("Bot token is not set: environment variable %s is empty", cfg.Telegram.TokenEnv)
	}

	client, err := telegramClient.NewClient(token, log)
	if err != nil {
		log.Fatal("Failed to initialize Telegram client: %v", err)
	}

	// Инициализируем хранилища
	bookingRegistry := registryRepo.NewRepository()
	sessionStore := sessionsRepo.NewStore()
	pendingRejections := sessionsRepo.NewPendingRejections()

	metricsCollector.RegisterPendingGauge(func() float64 {
		return float64(bookingRegistry.Len())
	})

	// Инициализируем use cases
	getAvailableSlotsUseCase, err := getAvailableSlotsUC.NewUseCase(cfg.Booking, log)
	if err != nil {
		log.Fatal("Failed to initialize slots use case: %v", err)
	}

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRegistry,
		client,
		cfg.Telegram.AdminChatID,
		metricsCollector,
		log,
	)

	resolveBookingUseCase := resolveBookingUC.NewUseCase(
		bookingRegistry,
		client,
		journal,
		metricsCollector,
		log,
	)

	// Инициализируем флоу
	userFlow := userflow.NewService(
		sessionStore,
		getAvailableSlotsUseCase,
		createBookingUseCase,
		client,
		cfg.Booking.LookaheadDays,
		loc,
		log,
	)

	adminFlow := adminflow.NewService(
		bookingRegistry,
		resolveBookingUseCase,
		pendingRejections,
		client,
		log,
	)

	b := bot.New(
		client,
		userFlow,
		adminFlow,
		cfg.Telegram.AdminChatID,
		loc,
		cfg.Telegram.PollTimeout,
		metricsCollector,
		log,
	)

	// Служебный HTTP-сервер: метрики и health check
	var opsSrv *http.Server
	if cfg.Metrics.Enabled {
		r := mux.NewRouter()
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		}).Methods(http.MethodGet)

		opsSrv = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler: r,
		}
		go func() {
			log.Info("Prometheus metrics endpoint exposed at %s%s", opsSrv.Addr, cfg.Metrics.Path)
			if err := opsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("Ops server failed: %v", err)
			}
		}()
	}

	// Запускаем цикл обновлений
	ctx, cancel := context.WithCancel(context.Background())
	go b.Run(ctx)

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	cancel()

	if opsSrv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := opsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error("Ops server forced to shutdown: %v", err)
		}
	}

	log.Info("Bot stopped gracefully")
}
