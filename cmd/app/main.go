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

	"eats/cmd"
	"eats/internal/adapters/out/postgres"
	"eats/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code so that deferred cleanup runs
// before the process exits.
func realMain() int {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Errorf("Invalid configuration: %v", err)
		return 1
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gormOpen(configs)
	if err != nil {
		log.Errorf("Failed to connect to database: %v", err)
		return 1
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Errorf("Failed to migrate database: %v", err)
		return 1
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, appLogger)
	if err != nil {
		log.Errorf("Failed to build application: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, app, configs.HTTPPort, appLogger)
}

// application is the part of the composition root the process drives.
type application interface {
	CreateRouter(ctx context.Context) (*echo.Echo, error)
	CreateJobManager() *jobs.JobManager
	CloseStreams()
	Close() error
}

// serve runs app until ctx is cancelled and always closes it afterwards.
func serve(ctx context.Context, app application, port string, appLogger *slog.Logger) int {
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			appLogger.Error("Failed to close broker connection", "error", closeErr)
		}
	}()

	if err := run(ctx, app, port, appLogger); err != nil {
		appLogger.Error("Application stopped with error", "error", err)
		return 1
	}
	return 0
}

func getConfigs() cmd.Config {
	// A missing .env is fine: the process environment is used as is.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:         os.Getenv("HTTP_PORT"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        os.Getenv("DB_SSLMODE"),
		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		MailgunDomain:    os.Getenv("MAILGUN_DOMAIN"),
		MailgunAPIKey:    os.Getenv("MAILGUN_API_KEY"),
		MailFrom:         os.Getenv("MAIL_FROM"),
		PromotionCron:    os.Getenv("PROMOTION_CRON"),
	}.WithDefaults()
}

func gormOpen(configs cmd.Config) (*gorm.DB, error) {
	return gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// run serves HTTP and runs the jobs until ctx is cancelled or one of them fails.
func run(ctx context.Context, app application, port string, appLogger *slog.Logger) error {
	router, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("HTTP server started", "port", port)
		if startErr := router.Start(fmt.Sprintf("0.0.0.0:%s", port)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(router, app, appLogger)
	})

	return g.Wait()
}

func shutdown(router *echo.Echo, app application, appLogger *slog.Logger) error {
	appLogger.Info("Shutting down")

	// Event streams only end when their subscription closes.
	app.CloseStreams()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return router.Shutdown(ctx)
}
