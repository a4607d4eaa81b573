// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, the notification sink and the blob store.
// These interfaces keep the lifecycle handlers independent of GORM and of
// any concrete delivery channel.
package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

// ShipmentRepository is the persistence contract for the Shipment aggregate.
type ShipmentRepository interface {
	// Add persists a new shipment. The tracking id must be unique.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by id. Returns an ObjectNotFoundError when
	// the shipment does not exist.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// Delete hard-deletes a shipment row. The audit trail is unaffected.
	Delete(ctx context.Context, id kernel.UUID) error
}
