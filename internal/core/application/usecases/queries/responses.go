// Package queries contains read-only operations served straight from the
// database as read models, bypassing the domain aggregates. Handlers run
// raw SQL over the GORM connection; authorization scoping happens in the
// WHERE clause so a caller never receives rows the access policy would
// hide from them.
package queries

import (
	"database/sql"
	"time"

	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ShipmentSummary is the row shape shared by the list, search and recent
// activity queries.
type ShipmentSummary struct {
	ID            kernel.UUID
	TrackingID    string
	SenderName    string
	ReceiverName  string
	ReceiverPhone string
	Status        string
	AssignedTo    *kernel.UUID
	Price         *float64
	DeliveryType  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// shipmentSummaryColumns is the SELECT list matching scanShipmentSummaries.
const shipmentSummaryColumns = `
	id,
	tracking_id,
	sender_name,
	receiver_name,
	receiver_phone,
	status,
	assigned_to,
	price,
	delivery_type,
	created_at,
	updated_at`

func scanShipmentSummaries(rows *sql.Rows) ([]ShipmentSummary, error) {
	summaries := make([]ShipmentSummary, 0)

	for rows.Next() {
		var (
			summary    ShipmentSummary
			id         uuid.UUID
			assignedTo uuid.NullUUID
			price      sql.NullFloat64
		)

		if err := rows.Scan(
			&id,
			&summary.TrackingID,
			&summary.SenderName,
			&summary.ReceiverName,
			&summary.ReceiverPhone,
			&summary.Status,
			&assignedTo,
			&price,
			&summary.DeliveryType,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		); err != nil {
			return nil, err
		}

		shipmentID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.ID = shipmentID

		if assignedTo.Valid {
			agentID, err := kernel.UUIDFromBytes(assignedTo.UUID[:])
			if err != nil {
				return nil, err
			}
			summary.AssignedTo = &agentID
		}
		if price.Valid {
			v := price.Float64
			summary.Price = &v
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func kernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func optionalFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func optionalUUID(v uuid.NullUUID) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
