package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jonboulle/clockwork"

	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/config"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/database"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/logging"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/routes"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/sentiment"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/services"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/store"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	// Review store
	var (
		persister    store.Persister
		dbLogHandler *logging.DBHandler
		cleanupDone  = make(chan struct{})
	)
	switch cfg.StoreDriver {
	case config.StoreCSV:
		persister = store.NewCSVPersister(cfg.CSVPath)
	case config.StorePostgres, config.StoreSQLite:
		if cfg.StoreDriver == config.StorePostgres && cfg.DBPassword == "" {
			slog.Error("DB_PASSWORD environment variable is required")
			os.Exit(1)
		}
		if err := database.Connect(cfg); err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		if err := database.Migrate(); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		gp, err := store.NewGormPersister(database.DB)
		if err != nil {
			slog.Error("review table setup failed", "error", err)
			os.Exit(1)
		}
		persister = gp

		// ERROR+ logs also go to system_logs
		dbLogHandler = logging.NewDBHandler(database.DB, 5*time.Second)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
			dbLogHandler,
		)))
		logging.StartCleanup(database.DB, cleanupDone)
	default:
		slog.Error("unknown REVIEWS_STORE", "store", cfg.StoreDriver)
		os.Exit(1)
	}

	reviewStore, err := store.New(persister)
	if err != nil {
		slog.Error("failed to load reviews", "store", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	slog.Info("reviews loaded", "store", cfg.StoreDriver, "count", reviewStore.Len())

	// Services
	reviewService := services.NewReviewService(reviewStore, sentiment.NewAnalyzer(), clockwork.NewRealClock())

	// Handlers
	reviewHandler := handlers.NewReviewHandler(reviewService)
	var ping func() error
	if cfg.UsesDatabase() {
		ping = database.Ping
	}
	healthHandler := handlers.NewHealthHandler(reviewService, cfg.StoreDriver, ping)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.MaxBodyBytes,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, reviewHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if database.DB != nil {
		if err := database.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}
