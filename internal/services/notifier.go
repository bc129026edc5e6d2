package services

import (
	"context"
	"log/slog"
)

// LoggingNotificationSink writes notification events to the structured
// log. It stands in for a real delivery channel (SMS, email, push) and
// shares its contract: Notify never returns an error and never blocks a
// ledger operation.
type LoggingNotificationSink struct {
	logger *slog.Logger
}

func NewLoggingNotificationSink(logger *slog.Logger) NotificationSinkInterface {
	return &LoggingNotificationSink{logger: logger}
}

func (n *LoggingNotificationSink) Notify(ctx context.Context, event NotificationEvent) {
	attrs := []any{
		slog.String("event_type", event.Type),
		slog.String("member_id", event.MemberID.String()),
		slog.String("resource_id", event.ResourceID.String()),
		slog.Time("occurred_at", event.OccurredAt),
	}
	for key, value := range event.Data {
		attrs = append(attrs, slog.String(key, value))
	}

	n.logger.InfoContext(ctx, "notification dispatched", attrs...)
}
