package shipment

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// MinSigneeNameLength is the shortest accepted signee name.
const MinSigneeNameLength = 3

// ErrProofIsNotConstructed is returned when a ProofOfDelivery was not
// created through NewProofOfDelivery or RestoreProofOfDelivery.
var ErrProofIsNotConstructed = errors.New(
	"ProofOfDelivery must be created via NewProofOfDelivery or RestoreProofOfDelivery")

// Geolocation is the point where delivery was completed.
type Geolocation struct {
	Latitude  float64
	Longitude float64
}

// ProofOfDelivery captures the evidence recorded when an agent completes a
// delivery: the signee's name, a signature blob reference, and optionally a
// photo reference and the capture location. A proof is created once, is
// immutable, and is owned 1:1 by its shipment via podId.
type ProofOfDelivery struct {
	id           kernel.UUID
	shipmentID   kernel.UUID
	signeeName   string
	signatureRef string
	photoRef     string
	location     *Geolocation
	timestamp    time.Time

	isConstructed bool
}

// NewProofOfDelivery creates the proof record for a completed delivery.
// signeeName must be at least MinSigneeNameLength characters and
// signatureRef must be non-empty; photoRef and location are optional.
func NewProofOfDelivery(
	id kernel.UUID,
	shipmentID kernel.UUID,
	signeeName string,
	signatureRef string,
	photoRef string,
	location *Geolocation,
	timestamp time.Time,
) (*ProofOfDelivery, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate()); err != nil {
		return nil, err
	}
	if len(signeeName) < MinSigneeNameLength {
		return nil, errs.NewValueIsInvalidErrorWithCause("signeeName",
			fmt.Errorf("%q is shorter than %d characters", signeeName, MinSigneeNameLength))
	}
	if signatureRef == "" {
		return nil, errs.NewValueIsRequiredError("signatureRef")
	}

	return &ProofOfDelivery{
		id:            id,
		shipmentID:    shipmentID,
		signeeName:    signeeName,
		signatureRef:  signatureRef,
		photoRef:      photoRef,
		location:      location,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// RestoreProofOfDelivery reconstructs a proof from persistence.
func RestoreProofOfDelivery(
	id kernel.UUID,
	shipmentID kernel.UUID,
	signeeName string,
	signatureRef string,
	photoRef string,
	location *Geolocation,
	timestamp time.Time,
) (*ProofOfDelivery, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate()); err != nil {
		return nil, err
	}

	return &ProofOfDelivery{
		id:            id,
		shipmentID:    shipmentID,
		signeeName:    signeeName,
		signatureRef:  signatureRef,
		photoRef:      photoRef,
		location:      location,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// Validate ensures the proof was built through a constructor.
func (p *ProofOfDelivery) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProofIsNotConstructed
	}
	return nil
}

func (p *ProofOfDelivery) ID() kernel.UUID         { return p.id }
func (p *ProofOfDelivery) ShipmentID() kernel.UUID { return p.shipmentID }
func (p *ProofOfDelivery) SigneeName() string      { return p.signeeName }
func (p *ProofOfDelivery) SignatureRef() string    { return p.signatureRef }

// PhotoRef returns the optional photo blob reference, empty when absent.
func (p *ProofOfDelivery) PhotoRef() string { return p.photoRef }

// Location returns the optional capture point, nil when absent.
func (p *ProofOfDelivery) Location() *Geolocation { return p.location }

func (p *ProofOfDelivery) Timestamp() time.Time { return p.timestamp }
