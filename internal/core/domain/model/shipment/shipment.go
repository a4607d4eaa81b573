package shipment

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// Upper sanity bounds for the billing inputs, enforced identically on the
// create and edit paths.
const (
	MaxWeightKg   = 500.0
	MaxDistanceKm = 2000.0
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the central aggregate of the system: a single parcel's
// tracking record from booking through delivery or cancellation.
//
// Invariants maintained here:
//   - trackingID is assigned exactly once, at creation, and never changes
//   - status moves only along the edges validated by Status.CanTransitionTo
//   - podID is set only by CompleteDelivery
//   - every mutator refreshes updatedAt
//
// Price consistency (recompute on weight/distance/deliveryType change) is
// owned by the lifecycle handlers, which call the pricing calculator and
// SetPrice in the same operation that changed the inputs.
type Shipment struct {
	id         kernel.UUID
	trackingID string

	senderName    string
	senderPhone   *kernel.Phone
	receiverName  string
	receiverPhone kernel.Phone

	pickupAddress   string
	deliveryAddress string
	branchID        *kernel.UUID

	status     Status
	assignedTo *kernel.UUID

	weight        *float64
	distance      *float64
	price         *float64
	paymentStatus *PaymentStatus
	paymentMethod *PaymentMethod
	deliveryType  DeliveryType

	podID     *kernel.UUID
	invoiceID *kernel.UUID

	notes                string
	expectedDeliveryDate string
	bookedBy             *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewShipmentParams carries the caller-supplied fields for NewShipment.
// Optional fields are pointers or zero values.
type NewShipmentParams struct {
	SenderName    string
	SenderPhone   *kernel.Phone
	ReceiverName  string
	ReceiverPhone kernel.Phone

	PickupAddress   string
	DeliveryAddress string
	BranchID        *kernel.UUID

	Weight        *float64
	Distance      *float64
	DeliveryType  DeliveryType
	PaymentStatus *PaymentStatus
	PaymentMethod *PaymentMethod

	Notes                string
	ExpectedDeliveryDate string
	BookedBy             *kernel.UUID
}

// NewShipment creates a shipment in the pending state. The tracking ID comes
// from the identifier generator and is immutable from here on. Price is not
// computed here; the create handler derives it from weight and distance when
// both are present.
func NewShipment(id kernel.UUID, trackingID string, now time.Time, params NewShipmentParams) (*Shipment, error) {
	s := &Shipment{
		status:        StatusPending,
		deliveryType:  DeliveryTypeNormal,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingID(trackingID),
		s.setSenderName(params.SenderName),
		s.setReceiverName(params.ReceiverName),
		s.setReceiverPhone(params.ReceiverPhone),
		s.setPickupAddress(params.PickupAddress),
		s.setDeliveryAddress(params.DeliveryAddress),
		s.setWeight(params.Weight),
		s.setDistance(params.Distance),
	); err != nil {
		return nil, err
	}

	if params.DeliveryType != "" {
		if err := params.DeliveryType.Validate(); err != nil {
			return nil, err
		}
		s.deliveryType = params.DeliveryType
	}
	if params.PaymentStatus != nil {
		if err := params.PaymentStatus.Validate(); err != nil {
			return nil, err
		}
		s.paymentStatus = params.PaymentStatus
	}
	if params.PaymentMethod != nil {
		if err := params.PaymentMethod.Validate(); err != nil {
			return nil, err
		}
		s.paymentMethod = params.PaymentMethod
	}

	s.senderPhone = params.SenderPhone
	s.branchID = params.BranchID
	s.notes = params.Notes
	s.expectedDeliveryDate = params.ExpectedDeliveryDate
	s.bookedBy = params.BookedBy

	return s, nil
}

// RestoreShipmentParams carries the full persisted state for rehydration.
type RestoreShipmentParams struct {
	ID         kernel.UUID
	TrackingID string

	SenderName    string
	SenderPhone   *kernel.Phone
	ReceiverName  string
	ReceiverPhone kernel.Phone

	PickupAddress   string
	DeliveryAddress string
	BranchID        *kernel.UUID

	Status     Status
	AssignedTo *kernel.UUID

	Weight        *float64
	Distance      *float64
	Price         *float64
	PaymentStatus *PaymentStatus
	PaymentMethod *PaymentMethod
	DeliveryType  DeliveryType

	PodID     *kernel.UUID
	InvoiceID *kernel.UUID

	Notes                string
	ExpectedDeliveryDate string
	BookedBy             *kernel.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreShipment reconstructs a shipment from persistence without applying
// creation-time defaults. Used only by the storage adapters.
func RestoreShipment(params RestoreShipmentParams) (*Shipment, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.Status.Validate(),
		params.DeliveryType.Validate(),
	); err != nil {
		return nil, err
	}
	if params.TrackingID == "" {
		return nil, errs.NewValueIsRequiredError("trackingId")
	}

	return &Shipment{
		id:                   params.ID,
		trackingID:           params.TrackingID,
		senderName:           params.SenderName,
		senderPhone:          params.SenderPhone,
		receiverName:         params.ReceiverName,
		receiverPhone:        params.ReceiverPhone,
		pickupAddress:        params.PickupAddress,
		deliveryAddress:      params.DeliveryAddress,
		branchID:             params.BranchID,
		status:               params.Status,
		assignedTo:           params.AssignedTo,
		weight:               params.Weight,
		distance:             params.Distance,
		price:                params.Price,
		paymentStatus:        params.PaymentStatus,
		paymentMethod:        params.PaymentMethod,
		deliveryType:         params.DeliveryType,
		podID:                params.PodID,
		invoiceID:            params.InvoiceID,
		notes:                params.Notes,
		expectedDeliveryDate: params.ExpectedDeliveryDate,
		bookedBy:             params.BookedBy,
		createdAt:            params.CreatedAt,
		updatedAt:            params.UpdatedAt,
		isConstructed:        true,
	}, nil
}

// Validate ensures the shipment was built through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID             { return s.id }
func (s *Shipment) TrackingID() string          { return s.trackingID }
func (s *Shipment) SenderName() string          { return s.senderName }
func (s *Shipment) SenderPhone() *kernel.Phone  { return s.senderPhone }
func (s *Shipment) ReceiverName() string        { return s.receiverName }
func (s *Shipment) ReceiverPhone() kernel.Phone { return s.receiverPhone }
func (s *Shipment) PickupAddress() string       { return s.pickupAddress }
func (s *Shipment) DeliveryAddress() string     { return s.deliveryAddress }
func (s *Shipment) BranchID() *kernel.UUID      { return s.branchID }
func (s *Shipment) Status() Status              { return s.status }
func (s *Shipment) AssignedTo() *kernel.UUID    { return s.assignedTo }
func (s *Shipment) Weight() *float64            { return s.weight }
func (s *Shipment) Distance() *float64          { return s.distance }
func (s *Shipment) Price() *float64             { return s.price }
func (s *Shipment) PaymentStatus() *PaymentStatus {
	return s.paymentStatus
}
func (s *Shipment) PaymentMethod() *PaymentMethod {
	return s.paymentMethod
}
func (s *Shipment) DeliveryType() DeliveryType { return s.deliveryType }
func (s *Shipment) PodID() *kernel.UUID        { return s.podID }
func (s *Shipment) InvoiceID() *kernel.UUID    { return s.invoiceID }
func (s *Shipment) Notes() string              { return s.notes }
func (s *Shipment) ExpectedDeliveryDate() string {
	return s.expectedDeliveryDate
}
func (s *Shipment) BookedBy() *kernel.UUID { return s.bookedBy }
func (s *Shipment) CreatedAt() time.Time   { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time   { return s.updatedAt }

// IsAssignedTo reports whether the shipment is assigned to the given agent.
func (s *Shipment) IsAssignedTo(agentID kernel.UUID) bool {
	return s.assignedTo != nil && s.assignedTo.IsEqual(agentID)
}

// ApplyPatch merges the provided fields into the shipment, leaving the rest
// untouched, and refreshes updatedAt. Field values are validated with the
// same rules as creation. The caller recomputes price afterwards when the
// patch changed weight, distance or delivery type.
func (s *Shipment) ApplyPatch(patch Patch, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}

	var errJoin []error
	if patch.SenderName != nil {
		errJoin = append(errJoin, s.setSenderName(*patch.SenderName))
	}
	if patch.ReceiverName != nil {
		errJoin = append(errJoin, s.setReceiverName(*patch.ReceiverName))
	}
	if patch.ReceiverPhone != nil {
		errJoin = append(errJoin, s.setReceiverPhone(*patch.ReceiverPhone))
	}
	if patch.PickupAddress != nil {
		errJoin = append(errJoin, s.setPickupAddress(*patch.PickupAddress))
	}
	if patch.DeliveryAddress != nil {
		errJoin = append(errJoin, s.setDeliveryAddress(*patch.DeliveryAddress))
	}
	if patch.Weight != nil {
		errJoin = append(errJoin, s.setWeight(patch.Weight))
	}
	if patch.Distance != nil {
		errJoin = append(errJoin, s.setDistance(patch.Distance))
	}
	if patch.DeliveryType != nil {
		if err := patch.DeliveryType.Validate(); err != nil {
			errJoin = append(errJoin, err)
		} else {
			s.deliveryType = *patch.DeliveryType
		}
	}
	if patch.PaymentStatus != nil {
		if err := patch.PaymentStatus.Validate(); err != nil {
			errJoin = append(errJoin, err)
		} else {
			s.paymentStatus = patch.PaymentStatus
		}
	}
	if patch.PaymentMethod != nil {
		if err := patch.PaymentMethod.Validate(); err != nil {
			errJoin = append(errJoin, err)
		} else {
			s.paymentMethod = patch.PaymentMethod
		}
	}
	if err := errors.Join(errJoin...); err != nil {
		return err
	}

	if patch.SenderPhone != nil {
		s.senderPhone = patch.SenderPhone
	}
	if patch.BranchID != nil {
		s.branchID = patch.BranchID
	}
	if patch.Notes != nil {
		s.notes = *patch.Notes
	}
	if patch.ExpectedDeliveryDate != nil {
		s.expectedDeliveryDate = *patch.ExpectedDeliveryDate
	}

	s.touch(now)
	return nil
}

// SetPrice records the derived price (nil clears it) and refreshes updatedAt.
// Called by the lifecycle handlers right after the pricing calculator ran.
func (s *Shipment) SetPrice(price *float64, now time.Time) {
	s.price = price
	s.touch(now)
}

// Assign sets the executing agent. Restricted to admins by the access
// policy; the aggregate only checks the id is valid and the shipment is not
// in a terminal state.
func (s *Shipment) Assign(agentID kernel.UUID, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := agentID.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot assign a %s shipment", s.status.Label()))
	}

	s.assignedTo = &agentID
	s.touch(now)
	return nil
}

// ChangeStatus moves the shipment along the status state machine.
// This path never attaches proof of delivery, even for the move to
// delivered; CompleteDelivery is the only operation that does.
func (s *Shipment) ChangeStatus(next Status, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := s.status.CanTransitionTo(next); err != nil {
		return err
	}

	s.status = next
	s.touch(now)
	return nil
}

// CompleteDelivery marks the shipment delivered with proof attached.
// podID references the ProofOfDelivery record created in the same
// transaction.
func (s *Shipment) CompleteDelivery(podID kernel.UUID, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := podID.Validate(); err != nil {
		return err
	}
	if err := s.status.CanTransitionTo(StatusDelivered); err != nil {
		return err
	}

	s.status = StatusDelivered
	s.podID = &podID
	s.touch(now)
	return nil
}

// AttachInvoice links a generated invoice to the shipment.
func (s *Shipment) AttachInvoice(invoiceID kernel.UUID, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	s.invoiceID = &invoiceID
	s.touch(now)
	return nil
}

// HasBillingInputs reports whether both weight and distance are present,
// the precondition for price computation.
func (s *Shipment) HasBillingInputs() bool {
	return s.weight != nil && s.distance != nil
}

func (s *Shipment) touch(now time.Time) {
	s.updatedAt = now
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingID(trackingID string) error {
	if trackingID == "" {
		return errs.NewValueIsRequiredError("trackingId")
	}
	s.trackingID = trackingID
	return nil
}

func (s *Shipment) setSenderName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	s.senderName = name
	return nil
}

func (s *Shipment) setReceiverName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}
	s.receiverName = name
	return nil
}

func (s *Shipment) setReceiverPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	s.receiverPhone = phone
	return nil
}

func (s *Shipment) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	s.pickupAddress = address
	return nil
}

func (s *Shipment) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	s.deliveryAddress = address
	return nil
}

func (s *Shipment) setWeight(weight *float64) error {
	if weight == nil {
		return nil
	}
	if *weight <= 0 || *weight > MaxWeightKg {
		return errs.NewValueIsOutOfRangeError("weight", *weight, 0, MaxWeightKg)
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setDistance(distance *float64) error {
	if distance == nil {
		return nil
	}
	if *distance <= 0 || *distance > MaxDistanceKm {
		return errs.NewValueIsOutOfRangeError("distance", *distance, 0, MaxDistanceKm)
	}
	s.distance = distance
	return nil
}
