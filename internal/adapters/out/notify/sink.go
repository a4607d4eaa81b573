// Package notify contains the outbound notification adapter. The current
// implementation writes notifications to the structured log; an SMS or email
// gateway can replace it behind the same port.
package notify

import (
	"context"
	"log/slog"

	"courier/internal/core/ports"
)

// LogNotificationSink records every notification in the application log.
type LogNotificationSink struct {
	logger *slog.Logger
}

// NewLogNotificationSink creates a log-backed notification sink.
func NewLogNotificationSink(logger *slog.Logger) *LogNotificationSink {
	return &LogNotificationSink{
		logger: logger.With("component", "notifications"),
	}
}

// Send logs the notification. It never fails.
func (s *LogNotificationSink) Send(ctx context.Context, n ports.Notification) error {
	s.logger.InfoContext(ctx, "notification sent",
		"recipient", n.Recipient,
		"phone", n.Phone,
		"subject", n.Subject,
		"body", n.Body,
	)
	return nil
}
