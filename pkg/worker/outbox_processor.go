package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/internal/repository"
	"github.com/Shrihari6/medflow-nova/pkg/logger"
	"github.com/Shrihari6/medflow-nova/pkg/messaging"
	"github.com/Shrihari6/medflow-nova/pkg/metrics"
)

const eventsChannel = "hospital.events"

type OutboxProcessorConfig struct {
	BatchSize    int
	PollInterval time.Duration
}

// OutboxProcessor drains pending outbox rows and publishes them to the
// message broker. Admission and status-change events are written to the
// outbox in the same request that mutates the record, so a broker outage
// delays delivery instead of losing events.
type OutboxProcessor struct {
	repo    repository.OutboxRepository
	broker  messaging.Broker
	config  OutboxProcessorConfig
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewOutboxProcessor(
	repo repository.OutboxRepository,
	broker messaging.Broker,
	config OutboxProcessorConfig,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *OutboxProcessor {
	if config.BatchSize <= 0 {
		config.BatchSize = 50
	}
	if config.PollInterval <= 0 {
		config.PollInterval = 5 * time.Second
	}

	return &OutboxProcessor{
		repo:    repo,
		broker:  broker,
		config:  config,
		logger:  logger,
		metrics: metrics,
	}
}

func (p *OutboxProcessor) Start(ctx context.Context) {
	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	p.logger.Info("starting outbox processor")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("outbox processor stopped")
			return
		case <-ticker.C:
			p.processBatch(ctx)
		}
	}
}

func (p *OutboxProcessor) processBatch(ctx context.Context) {
	events, err := p.repo.GetPending(ctx, p.config.BatchSize)
	if err != nil {
		p.logger.Error(err, "failed to fetch pending outbox events")
		return
	}
	p.metrics.OutboxQueueSize.Set(float64(len(events)))

	for _, event := range events {
		if err := p.publish(ctx, event); err != nil {
			p.metrics.OutboxEventsFailed.Inc()
			p.logger.Error(err, "failed to publish outbox event", "event_id", event.ID)
			if err := p.repo.MarkFailed(ctx, event.ID, err.Error()); err != nil {
				p.logger.Error(err, "failed to mark outbox event failed", "event_id", event.ID)
			}
			continue
		}

		p.metrics.OutboxEventsProcessed.Inc()
		if err := p.repo.MarkProcessed(ctx, event.ID); err != nil {
			p.logger.Error(err, "failed to mark outbox event processed", "event_id", event.ID)
		}
	}
}

func (p *OutboxProcessor) publish(ctx context.Context, event *model.OutboxEvent) error {
	message := struct {
		ID        string          `json:"id"`
		Type      string          `json:"type"`
		Payload   json.RawMessage `json:"payload"`
		CreatedAt time.Time       `json:"created_at"`
	}{
		ID:        event.ID.String(),
		Type:      event.EventType,
		Payload:   event.Payload,
		CreatedAt: event.CreatedAt,
	}

	return p.broker.Publish(ctx, eventsChannel, message)
}
