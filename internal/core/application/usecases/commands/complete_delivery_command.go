package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
	ErrSignatureIsRequired = errors.New("signature image is required")
)

// CompleteDeliveryCommand represents a request to finish a delivery with
// proof attached: the signee's name, a signature image, and optionally a
// photo and the capture location.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      principal.Principal
	signeeName string
	signature  []byte
	photo      []byte
	location   *shipment.Geolocation

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// The signature image is mandatory; photo and location may be absent.
func NewCompleteDeliveryCommand(
	shipmentID kernel.UUID,
	actor principal.Principal,
	signeeName string,
	signature []byte,
	photo []byte,
	location *shipment.Geolocation,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		photo:    photo,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
		cmd.setSigneeName(signeeName),
		cmd.setSignature(signature),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// ShipmentID returns the target shipment id.
func (c CompleteDeliveryCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the principal completing the delivery.
func (c CompleteDeliveryCommand) Actor() principal.Principal {
	return c.actor
}

// SigneeName returns the name of the person who received the parcel.
func (c CompleteDeliveryCommand) SigneeName() string {
	return c.signeeName
}

// Signature returns the signature image bytes.
func (c CompleteDeliveryCommand) Signature() []byte {
	return c.signature
}

// Photo returns the optional delivery photo bytes, possibly nil.
func (c CompleteDeliveryCommand) Photo() []byte {
	return c.photo
}

// Location returns the optional capture location, possibly nil.
func (c CompleteDeliveryCommand) Location() *shipment.Geolocation {
	return c.location
}

func (c *CompleteDeliveryCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CompleteDeliveryCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CompleteDeliveryCommand) setSigneeName(signeeName string) error {
	if len(signeeName) < shipment.MinSigneeNameLength {
		return errs.NewValueIsInvalidErrorWithCause("signeeName",
			fmt.Errorf("%q is shorter than %d characters", signeeName, shipment.MinSigneeNameLength))
	}

	c.signeeName = signeeName
	return nil
}

func (c *CompleteDeliveryCommand) setSignature(signature []byte) error {
	if len(signature) == 0 {
		return ErrSignatureIsRequired
	}

	c.signature = signature
	return nil
}
