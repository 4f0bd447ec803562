package consumer

import (
	"context"

	"transferdesk/internal/analytics"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLifecycleEvents rebuilds the report caches whenever an employee is
// registered or a transfer is recorded. The payload itself does not matter;
// any lifecycle event means the histories behind the reports changed. Offsets
// commit only after a successful rebuild so a failed warm is retried.
func ConsumeLifecycleEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	reports analytics.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.lifecycle")
	log.Info("lifecycle consumer started", zap.String("topic", reader.Config().Topic))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("lifecycle consumer stopped")
				return
			}
			log.Error("fetch lifecycle message failed", zap.Error(err))
			continue
		}

		if err := reports.WarmCaches(ctx); err != nil {
			log.Error("report cache warm failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit lifecycle message failed", zap.Error(err))
			continue
		}

		log.Debug("report caches rebuilt from lifecycle event",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
		)
	}
}
