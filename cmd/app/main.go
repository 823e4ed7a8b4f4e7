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

	"orderdesk/cmd"
	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres/ordereventrepo"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/productrepo"
	"orderdesk/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	db, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close event publisher", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap := app.CreateBootstrapCatalogCommandHandler()
	if err = bootstrap.Handle(ctx, commands.NewBootstrapCatalogCommand()); err != nil {
		log.Fatalf("Failed to bootstrap catalog: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if jobManager != nil {
		if err = jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	} else {
		logger.Info("KAFKA_BROKERS is not set, order events stay in the outbox")
	}

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT", cmd.DefaultHTTPPort),
		DBHost:                goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:                goDotEnvVariable("DB_PORT", "5432"),
		DBUser:                goDotEnvVariable("DB_USER", ""),
		DBPassword:            goDotEnvVariable("DB_PASSWORD", ""),
		DBName:                goDotEnvVariable("DB_NAME", ""),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE", "disable"),
		CatalogFeedURL:        goDotEnvVariable("CATALOG_FEED_URL", cmd.DefaultCatalogFeedURL),
		PaymentGatewayURL:     goDotEnvVariable("PAYMENT_GATEWAY_URL", cmd.DefaultPaymentGatewayURL),
		PaymentTimeout:        goDotEnvVariable("PAYMENT_TIMEOUT", cmd.DefaultPaymentTimeout),
		KafkaBrokers:          goDotEnvVariable("KAFKA_BROKERS", ""),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC", cmd.DefaultKafkaOrderEventsTopic),
		OutboxRelaySchedule:   goDotEnvVariable("OUTBOX_RELAY_SCHEDULE", ""),
		OutboxRelayBatchSize:  goDotEnvVariable("OUTBOX_RELAY_BATCH_SIZE", cmd.DefaultOutboxRelayBatchSize),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(&productrepo.ProductDTO{}, &orderrepo.OrderDTO{}, &ordereventrepo.OrderEventDTO{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	httpadapter.RegisterMiddleware(e, logger)
	httpadapter.RegisterHandlers(e, app.CreateHTTPServer())

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
}
