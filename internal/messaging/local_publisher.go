package messaging

import (
	"context"
	"log/slog"
)

// LocalPublisher accepts every publish and only logs it. Nothing is ever
// delivered to a consumer; it keeps order creation working when no broker is
// configured.
type LocalPublisher struct {
	logger *slog.Logger
}

// NewLocalPublisher creates a LocalPublisher.
func NewLocalPublisher(logger *slog.Logger) *LocalPublisher {
	return &LocalPublisher{logger: logger}
}

// Publish logs msg at WARN level and returns nil.
func (p *LocalPublisher) Publish(ctx context.Context, topic string, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.logger != nil {
		p.logger.WarnContext(ctx, "message accepted by local broker fallback, not delivered",
			slog.String("broker", ModeLocal),
			slog.String("topic", topic),
			slog.String("message_id", msg.ID),
			slog.String("event_type", msg.EventType),
			slog.String("correlation_id", msg.CorrelationID),
		)
	}
	return nil
}

// Mode returns ModeLocal.
func (p *LocalPublisher) Mode() string {
	return ModeLocal
}

// Close is a no-op.
func (p *LocalPublisher) Close() error {
	return nil
}
