package ports

import (
	"context"
)

// Notification is a best-effort message to a shipment party. Delivery
// failures never fail the command that produced the notification.
type Notification struct {
	Recipient string
	Phone     string
	Subject   string
	Body      string
}

// NotificationSink dispatches notifications after a command commits.
type NotificationSink interface {
	Send(ctx context.Context, n Notification) error
}
