// Package auditlog contains the append-only audit trail of shipment
// mutations. Entries are written in the same transaction as the mutation
// they record and are never edited or removed, even after the shipment
// itself is deleted. The shipment id becomes a dangling reference then;
// the denormalized tracking id stays readable.
package auditlog

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// Action classifies what a log entry records.
type Action string

const (
	ActionCreated       Action = "created"
	ActionUpdated       Action = "updated"
	ActionStatusChanged Action = "status_changed"
	ActionAssigned      Action = "assigned"
	ActionDeleted       Action = "deleted"
)

// ActionFromString parses an action value.
func ActionFromString(s string) (Action, error) {
	switch Action(s) {
	case ActionCreated, ActionUpdated, ActionStatusChanged, ActionAssigned, ActionDeleted:
		return Action(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a valid audit action", s))
	}
}

// Validate checks the action is one of the known values.
func (a Action) Validate() error {
	_, err := ActionFromString(string(a))
	return err
}

func (a Action) String() string {
	return string(a)
}

// ErrEntryIsNotConstructed is returned when an Entry was not created
// through NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one immutable audit record. ShipmentID is kept nullable so the
// entry survives deletion of the shipment it describes; PerformedBy is
// nullable for system-initiated writes.
type Entry struct {
	id          kernel.UUID
	shipmentID  *kernel.UUID
	trackingID  string
	action      Action
	description string
	performedBy *kernel.UUID
	timestamp   time.Time

	isConstructed bool
}

// NewEntry creates an audit entry. TrackingID is required because it is
// the durable human-readable key after shipment deletion.
func NewEntry(
	id kernel.UUID,
	shipmentID *kernel.UUID,
	trackingID string,
	action Action,
	description string,
	performedBy *kernel.UUID,
	timestamp time.Time,
) (*Entry, error) {
	if err := errors.Join(id.Validate(), action.Validate()); err != nil {
		return nil, err
	}
	if trackingID == "" {
		return nil, errs.NewValueIsRequiredError("trackingId")
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}

	return &Entry{
		id:            id,
		shipmentID:    shipmentID,
		trackingID:    trackingID,
		action:        action,
		description:   description,
		performedBy:   performedBy,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	shipmentID *kernel.UUID,
	trackingID string,
	action Action,
	description string,
	performedBy *kernel.UUID,
	timestamp time.Time,
) (*Entry, error) {
	if err := errors.Join(id.Validate(), action.Validate()); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		shipmentID:    shipmentID,
		trackingID:    trackingID,
		action:        action,
		description:   description,
		performedBy:   performedBy,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was built through a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID           { return e.id }
func (e *Entry) ShipmentID() *kernel.UUID  { return e.shipmentID }
func (e *Entry) TrackingID() string        { return e.trackingID }
func (e *Entry) Action() Action            { return e.action }
func (e *Entry) Description() string       { return e.description }
func (e *Entry) PerformedBy() *kernel.UUID { return e.performedBy }
func (e *Entry) Timestamp() time.Time      { return e.timestamp }
