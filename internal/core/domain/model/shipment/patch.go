package shipment

import "courier/internal/core/domain/model/kernel"

// Patch lists the optional-and-settable fields of a shipment for partial
// updates. A nil field means "leave untouched". Tracking id, status,
// assignment, proof and invoice links are deliberately absent; those change
// only through their dedicated operations.
type Patch struct {
	SenderName    *string
	SenderPhone   *kernel.Phone
	ReceiverName  *string
	ReceiverPhone *kernel.Phone

	PickupAddress   *string
	DeliveryAddress *string
	BranchID        *kernel.UUID

	Weight        *float64
	Distance      *float64
	DeliveryType  *DeliveryType
	PaymentStatus *PaymentStatus
	PaymentMethod *PaymentMethod

	Notes                *string
	ExpectedDeliveryDate *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// TouchesBilling reports whether the patch changes any price input, in
// which case the update handler must recompute the price.
func (p Patch) TouchesBilling() bool {
	return p.Weight != nil || p.Distance != nil || p.DeliveryType != nil
}
