package ports

import (
	"context"

	"courier/internal/core/domain/model/auditlog"
)

// AuditLogRepository is the append side of the audit trail. Reads go
// through the query handlers.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *auditlog.Entry) error
}
