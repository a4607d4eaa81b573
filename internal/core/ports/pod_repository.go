package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

// PodRepository is the persistence contract for proof of delivery records.
type PodRepository interface {
	Add(ctx context.Context, pod *shipment.ProofOfDelivery) error

	// Get retrieves a proof of delivery by id. Returns an
	// ObjectNotFoundError when the record does not exist.
	Get(ctx context.Context, id kernel.UUID) (*shipment.ProofOfDelivery, error)
}
