package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/guard"
)

var ErrGetLogsQueryIsNotConstructed = errors.New(
	"GetLogsQuery must be created via NewGetLogsQuery constructor",
)

// GlobalLogFeedLimit bounds the global audit feed.
const GlobalLogFeedLimit = 50

// GetLogsQuery retrieves audit entries: either the full trail of one
// shipment newest-first, or the most recent entries across the system for
// the dashboard feed. Admin only.
type GetLogsQuery struct {
	actor      principal.Principal
	shipmentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLogsQuery creates an audit log query. A nil shipmentID requests
// the global feed.
func NewGetLogsQuery(actor principal.Principal, shipmentID *kernel.UUID) (GetLogsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetLogsQuery{}, err
	}
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return GetLogsQuery{}, err
		}
	}

	return GetLogsQuery{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetLogsQueryIsNotConstructed)
}

// Actor returns the requesting principal.
func (q GetLogsQuery) Actor() principal.Principal {
	return q.actor
}

// ShipmentID returns the optional shipment filter, possibly nil.
func (q GetLogsQuery) ShipmentID() *kernel.UUID {
	return q.shipmentID
}

// AuditEntryResponse is one audit trail row. ShipmentID may be a dangling
// reference when the shipment was deleted; TrackingID stays readable.
type AuditEntryResponse struct {
	ID          kernel.UUID
	ShipmentID  *kernel.UUID
	TrackingID  string
	Action      string
	Description string
	PerformedBy *kernel.UUID
	Timestamp   time.Time
}
