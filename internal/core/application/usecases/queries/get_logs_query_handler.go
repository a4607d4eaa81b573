package queries

import (
	"context"
	"database/sql"

	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLogsQueryHandler serves the audit trail views.
type GetLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetLogsQueryHandler creates the handler.
func NewGetLogsQueryHandler(db *gorm.DB) GetLogsQueryHandler {
	return GetLogsQueryHandler{db: db}
}

// Handle executes the query, newest entries first. The global feed is
// capped at GlobalLogFeedLimit.
func (h GetLogsQueryHandler) Handle(
	ctx context.Context,
	query GetLogsQuery,
) ([]AuditEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin() {
		return nil, errs.NewNotAuthorizedError(query.Actor().Role().String(), "getLogs")
	}

	const columns = `
		SELECT
			id,
			shipment_id,
			tracking_id,
			action,
			description,
			performed_by,
			timestamp
		FROM audit_logs`

	var rows *sql.Rows
	var err error
	if shipmentID := query.ShipmentID(); shipmentID != nil {
		rows, err = h.db.WithContext(ctx).Raw(columns+`
			WHERE shipment_id = ?
			ORDER BY timestamp DESC
		`, shipmentID.Bytes()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(columns+`
			ORDER BY timestamp DESC
			LIMIT ?
		`, GlobalLogFeedLimit).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]AuditEntryResponse, 0)
	for rows.Next() {
		var (
			entry       AuditEntryResponse
			id          uuid.UUID
			shipmentID  uuid.NullUUID
			performedBy uuid.NullUUID
		)

		if err = rows.Scan(
			&id,
			&shipmentID,
			&entry.TrackingID,
			&entry.Action,
			&entry.Description,
			&performedBy,
			&entry.Timestamp,
		); err != nil {
			return nil, err
		}

		if entry.ID, err = kernelUUID(id); err != nil {
			return nil, err
		}
		if entry.ShipmentID, err = optionalUUID(shipmentID); err != nil {
			return nil, err
		}
		if entry.PerformedBy, err = optionalUUID(performedBy); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
