package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/belvip/logistic-application/cmd"
	httpadapter "github.com/belvip/logistic-application/internal/adapters/in/http"
	"github.com/belvip/logistic-application/internal/adapters/out/metrics"
	"github.com/belvip/logistic-application/internal/adapters/out/postgres"
	"github.com/belvip/logistic-application/internal/adapters/in/http/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	recorder, err := metrics.NewRecorder()
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		recorder,
		logger,
	)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := newWebServer(&app, configs, recorder, logger)
	startWebServer(e, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	loadDotEnv()

	config := cmd.Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		APIPrefix:             envOrDefault("API_PREFIX", "/api/v1"),
		DBHost:                envOrDefault("DB_HOST", "localhost"),
		DBPort:                envOrDefault("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             envOrDefault("DB_SSLMODE", "disable"),
		StatusMetricsSchedule: os.Getenv("STATUS_METRICS_SCHEDULE"),
	}
	return config
}

// loadDotEnv reads .env when present. Variables already set in the
// environment take precedence over the file.
func loadDotEnv() {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func newWebServer(app *cmd.CompositionRoot, configs cmd.Config, recorder *metrics.Recorder, logger *slog.Logger) *echo.Echo {
	swagger, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}

	server := httpadapter.NewServer(
		app.CreateCreatePackageCommandHandler(),
		app.CreateUpdatePackageCommandHandler(),
		app.CreateGetPackageQueryHandler(),
		app.CreateListPackagesQueryHandler(),
	)

	e, err := httpadapter.NewRouter(server, httpadapter.RouterConfig{
		APIPrefix: configs.APIPrefix,
		Logger:    logger.With("component", "http"),
		Metrics:   recorder,
		Swagger:   swagger,
	})
	if err != nil {
		log.Fatalf("Failed to build HTTP router: %v", err)
	}
	return e
}

func startWebServer(e *echo.Echo, port string, logger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server starting", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
