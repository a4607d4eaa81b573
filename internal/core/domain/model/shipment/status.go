package shipment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of a shipment.
//
// The canonical ordered set is:
//
//	pending → picked_up → in_transit → out_for_delivery → delivered
//
// with cancelled reachable from any non-terminal state. Transitions are
// enforced: a shipment may only move strictly forward along the chain
// (skipping intermediate states is allowed), or to cancelled. Delivered and
// cancelled are absorbing.
type Status string

const (
	// StatusPending is the initial state of every new shipment.
	StatusPending Status = "pending"
	// StatusPickedUp means the parcel has been collected from the sender.
	StatusPickedUp Status = "picked_up"
	// StatusInTransit means the parcel is moving between hubs.
	StatusInTransit Status = "in_transit"
	// StatusOutForDelivery means an agent is carrying the parcel to the receiver.
	StatusOutForDelivery Status = "out_for_delivery"
	// StatusDelivered is the successful terminal state.
	StatusDelivered Status = "delivered"
	// StatusCancelled is the aborted terminal state, reachable from any
	// non-terminal state.
	StatusCancelled Status = "cancelled"
)

// statusRank orders the forward chain. Cancelled sits outside the chain and
// is handled separately in CanTransitionTo.
func statusRank() map[Status]int {
	return map[Status]int{
		StatusPending:        0,
		StatusPickedUp:       1,
		StatusInTransit:      2,
		StatusOutForDelivery: 3,
		StatusDelivered:      4,
	}
}

func statusLabels() map[Status]string {
	return map[Status]string{
		StatusPending:        "Pending",
		StatusPickedUp:       "Picked Up",
		StatusInTransit:      "In Transit",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

// StatusFromString parses a status value as stored or received over the wire.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks the status is one of the six canonical values.
func (s Status) Validate() error {
	if _, ok := statusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation, e.g. "out_for_delivery".
func (s Status) String() string {
	return string(s)
}

// Label returns the human-readable form, e.g. "Out for Delivery".
// Used in audit log descriptions.
func (s Status) Label() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsTerminal reports whether the status is absorbing.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo validates a transition from s to next.
//
// Allowed:
//   - any strictly forward move along the pending → delivered chain,
//     including skips (e.g. pending → in_transit)
//   - any non-terminal state → cancelled
//
// Rejected:
//   - backward moves and self-transitions
//   - any move out of delivered or cancelled
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("shipment is already %s", s.Label()))
	}

	if next == StatusCancelled {
		return nil
	}

	if statusRank()[next] <= statusRank()[s] {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot move from %s to %s", s.Label(), next.Label()))
	}

	return nil
}
