package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shrihari6/medflow-nova/internal/config"
	"github.com/Shrihari6/medflow-nova/internal/repository/postgres"
	"github.com/Shrihari6/medflow-nova/pkg/logger"
	redisbroker "github.com/Shrihari6/medflow-nova/pkg/messaging/redis"
	"github.com/Shrihari6/medflow-nova/pkg/metrics"
	"github.com/Shrihari6/medflow-nova/pkg/worker"
)

// Standalone outbox worker. Runs the same processor the API embeds, for
// deployments where event publishing is scaled independently.
func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	broker, err := redisbroker.NewRedisBroker(cfg.Redis.URL)
	if err != nil {
		log.Fatal(err, "failed to connect to redis")
	}
	defer broker.Close()

	processor := worker.NewOutboxProcessor(
		postgres.NewOutboxRepository(db),
		broker,
		worker.OutboxProcessorConfig{
			BatchSize:    cfg.Outbox.BatchSize,
			PollInterval: cfg.Outbox.PollInterval,
		},
		log,
		metrics.NewMetrics("medflow_worker"),
	)

	ctx, cancel := context.WithCancel(context.Background())
	go processor.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker")
	cancel()
}
