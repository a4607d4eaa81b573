package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment with full detail. The actor is
// part of the query because read access depends on who is asking.
type GetShipmentQuery struct {
	shipmentID kernel.UUID
	actor      principal.Principal

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for a single shipment.
func NewGetShipmentQuery(shipmentID kernel.UUID, actor principal.Principal) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment id.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// Actor returns the requesting principal.
func (q GetShipmentQuery) Actor() principal.Principal {
	return q.actor
}

// GetShipmentQueryResponse is the full shipment detail view.
type GetShipmentQueryResponse struct {
	ID         kernel.UUID
	TrackingID string

	SenderName    string
	SenderPhone   *string
	ReceiverName  string
	ReceiverPhone string

	PickupAddress   string
	DeliveryAddress string
	BranchID        *kernel.UUID

	Status     string
	AssignedTo *kernel.UUID

	Weight        *float64
	Distance      *float64
	Price         *float64
	PaymentStatus *string
	PaymentMethod *string
	DeliveryType  string

	PodID     *kernel.UUID
	InvoiceID *kernel.UUID
	BookedBy  *kernel.UUID

	Notes                string
	ExpectedDeliveryDate string

	CreatedAt time.Time
	UpdatedAt time.Time
}
