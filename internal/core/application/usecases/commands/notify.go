package commands

import (
	"context"
	"log/slog"

	"courier/internal/core/ports"
)

// notify dispatches a notification after a successful commit. Delivery
// failures are logged and swallowed; the state change already happened.
func notify(ctx context.Context, sink ports.NotificationSink, logger *slog.Logger, n ports.Notification) {
	if sink == nil {
		return
	}
	if err := sink.Send(ctx, n); err != nil {
		logger.WarnContext(ctx, "notification delivery failed",
			"recipient", n.Recipient,
			"subject", n.Subject,
			"error", err)
	}
}
