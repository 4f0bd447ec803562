package producer

import (
	"context"
	"time"

	"transferdesk/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const batchSize = 50

// OutboxPublisher polls the outbox table and pushes due events to the broker.
// Publish failures are recorded through MarkFailed; the backoff it sets keeps
// a broken event from being retried on every tick.
type OutboxPublisher struct {
	repo     kafka.OutboxRepository
	writer   *kafkago.Writer
	interval time.Duration
	logger   *zap.Logger
}

func NewOutboxPublisher(
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	interval time.Duration,
	logger ...*zap.Logger,
) *OutboxPublisher {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &OutboxPublisher{
		repo:     repo,
		writer:   writer,
		interval: interval,
		logger:   l.Named("kafka.outbox.publisher"),
	}
}

// Run blocks until the context is cancelled.
func (p *OutboxPublisher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("outbox publisher started", zap.Duration("interval", p.interval))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("outbox publisher stopped")
			return
		case <-ticker.C:
			if err := p.drain(ctx); err != nil {
				p.logger.Error("outbox drain failed", zap.Error(err))
			}
		}
	}
}

func (p *OutboxPublisher) drain(ctx context.Context) error {
	events, err := p.repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	p.logger.Info("publishing outbox batch", zap.Int("count", len(events)))

	for _, event := range events {
		if err := p.publish(ctx, event); err != nil {
			p.logger.Error("outbox publish failed",
				zap.String("outbox_id", event.ID),
				zap.String("topic", event.Topic),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			_ = p.repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := p.repo.MarkSent(ctx, event.ID); err != nil {
			// The event will be re-published on the next tick; consumers
			// must tolerate the duplicate.
			p.logger.Error("mark sent failed", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}

		p.logger.Info("outbox event published",
			zap.String("outbox_id", event.ID),
			zap.String("topic", event.Topic),
			zap.String("event_type", event.EventType),
		)
	}
	return nil
}

func (p *OutboxPublisher) publish(ctx context.Context, event kafka.OutboxEvent) error {
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	})
}
