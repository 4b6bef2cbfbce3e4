package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/KimJinHyeon0/vroom/cmd"
	httpadapter "github.com/KimJinHyeon0/vroom/internal/adapters/in/http"
	"github.com/KimJinHyeon0/vroom/internal/adapters/in/http/api"
	_ "github.com/KimJinHyeon0/vroom/internal/adapters/in/http/docs"
	"github.com/KimJinHyeon0/vroom/internal/adapters/out/postgres/problemrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultRetentionPeriod   = 7 * 24 * time.Hour
	defaultRetentionSchedule = "0 0 * * * *"
	shutdownTimeout          = 10 * time.Second
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustGormOpen(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, app, configs.HTTPPort)
	stop()
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// run starts the scheduled jobs and serves HTTP until ctx is done. Jobs are
// stopped after the server has shut down.
func run(ctx context.Context, app cmd.CompositionRoot, port string) error {
	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("failed to start jobs: %w", err)
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, port)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	config := cmd.Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
		DurationFactor:    intVariable("DURATION_FACTOR", 0),
		MaxPriority:       int(intVariable("MAX_PRIORITY", 0)),
		RetentionPeriod:   durationVariable("RETENTION_PERIOD", defaultRetentionPeriod),
		RetentionSchedule: os.Getenv("RETENTION_SCHEDULE"),
	}
	if config.RetentionSchedule == "" {
		config.RetentionSchedule = defaultRetentionSchedule
	}
	return config
}

func intVariable(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&problemrepo.ProblemDTO{}, &problemrepo.JobDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) error {
	doc, err := api.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load OpenAPI document: %w", err)
	}

	validator, err := httpadapter.OpenAPIValidator(doc)
	if err != nil {
		return fmt.Errorf("failed to build request validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	httpadapter.RegisterHandlers(e, httpadapter.NewServer(
		app.CreateCreateProblemCommandHandler(),
		app.CreateAddJobCommandHandler(),
		app.CreateGetProblemQueryHandler(),
		app.CreateListProblemJobsQueryHandler(),
		app.CreateCheckJobStartQueryHandler(),
	))

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-serveErr
}
