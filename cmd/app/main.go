package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafedelivery/cmd"
	httpadapter "cafedelivery/internal/adapters/in/http"
	"cafedelivery/internal/adapters/out/postgres/cartrepo"
	"cafedelivery/internal/adapters/out/postgres/courierrepo"
	"cafedelivery/internal/adapters/out/postgres/orderrepo"
	redisadapter "cafedelivery/internal/adapters/out/redis"
	"cafedelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	redisClient, err := redisadapter.NewClient(ctx, configs.RedisHost, configs.RedisPassword)
	if err != nil {
		logger.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	jobManager := jobs.NewJobManager(app.CreateDispatchCourierCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	server := httpadapter.NewServer(httpadapter.ServerConfig{
		AddItemHandler:         app.CreateAddItemCommandHandler(),
		SetQuantityHandler:     app.CreateSetQuantityCommandHandler(),
		RemoveItemHandler:      app.CreateRemoveItemCommandHandler(),
		ClearCartHandler:       app.CreateClearCartCommandHandler(),
		CheckoutHandler:        app.CreateCheckoutCommandHandler(),
		ChangeStatusHandler:    app.CreateChangeOrderStatusCommandHandler(),
		AcceptDeliveryHandler:  app.CreateAcceptDeliveryCommandHandler(),
		MarkDeliveredHandler:   app.CreateMarkDeliveredCommandHandler(),
		CreateCourierHandler:   app.CreateCreateCourierCommandHandler(),
		SetAvailabilityHandler: app.CreateSetCourierAvailabilityCommandHandler(),

		GetCartHandler:              app.CreateGetCartQueryHandler(),
		GetOrdersHandler:            app.CreateGetOrdersQueryHandler(),
		GetOrderStatsHandler:        app.CreateGetOrderStatsQueryHandler(),
		GetAvailableCouriersHandler: app.CreateGetAvailableCouriersQueryHandler(),

		Watcher: app.CreateCartWatcher(),
		Logger:  logger,
	})
	server.RegisterRoutes(e, httpadapter.AuthMiddleware(app.CreateIdentityProvider()))

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		if err := e.Start(addr); err != nil {
			logger.Info("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, relying on environment variables")
	}

	return cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		DBHost:        envOrDefault("DB_HOST", "localhost"),
		DBPort:        envOrDefault("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     envOrDefault("DB_SSLMODE", "disable"),
		RedisHost:     envOrDefault("REDIS_HOST", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := gormDB.AutoMigrate(&cartrepo.CartDTO{}, &orderrepo.OrderDTO{}, &courierrepo.CourierDTO{}); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return gormDB, nil
}
