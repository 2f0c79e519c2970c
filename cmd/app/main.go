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

	"restaurant/cmd"
	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/eventlog"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))

	r, err := restaurant.New(config.RestaurantName, config.RestaurantAddress)
	if err != nil {
		log.Fatalf("Error creating restaurant: %v", err)
	}

	gormDB := openDatabase(ctx, config)

	events := eventlog.NewPublisher(logger, eventlog.DefaultCapacity)
	if config.RabbitMQURL != "" {
		broker, dialErr := rabbitmq.Dial(config.RabbitMQURL, config.RabbitMQExchange, logger)
		if dialErr != nil {
			log.Fatalf("Error connecting to RabbitMQ: %v", dialErr)
		}
		defer broker.Close()
		events.Forward(broker)
	}

	app := cmd.NewCompositionRoot(config, gormDB, r, events, logger)

	if config.HasDatabase() {
		seed := app.CreateSeedRestaurantCommandHandler()
		_, seedErr := seed.Handle(ctx, commands.NewSeedRestaurantCommand(true))
		switch {
		case errors.Is(seedErr, errs.ErrInvalidState):
			// Seeded, but without the staff needed to open.
			logger.WarnContext(ctx, "Restaurant stays closed", "error", seedErr)
		case seedErr != nil:
			log.Fatalf("Error seeding restaurant: %v", seedErr)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, config.HTTPPort, logger)
}

func openDatabase(ctx context.Context, config cmd.Config) *gorm.DB {
	if !config.HasDatabase() {
		return nil
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := httpin.LoadSpec(ctx)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	e, err := httpin.NewEcho(app.CreateServer(), doc, logger)
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", startErr)
		}
	}()
	logger.InfoContext(ctx, "HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
