package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"transferdesk/internal/analytics"
	"transferdesk/internal/employee"
	"transferdesk/internal/events"
	"transferdesk/internal/messaging/kafka/consumer"
	"transferdesk/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer follows both lifecycle topics and keeps the report caches warm.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	employeeRepo := employee.NewRepository(gormDB)
	reportService := analytics.NewService(employeeRepo, analytics.NewRankComparator(), redisClient, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, topic := range []string{events.TransferLifecycleTopic, events.EmployeeLifecycleTopic} {
		reader := kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{kafkaBroker},
			Topic:          topic,
			GroupID:        "transferdesk-reports",
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
		defer reader.Close()

		go consumer.ConsumeLifecycleEvents(ctx, reader, reportService, logger)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
