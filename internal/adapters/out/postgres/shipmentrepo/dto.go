// Package shipmentrepo provides the data transfer objects and mapping
// functions for shipment persistence. Handles the conversion between the
// shipment aggregate and its relational representation.
package shipmentrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Indexed for the hot lookups: tracking id, status, agent
// assignment and booker.
type ShipmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID string    `gorm:"size:32;uniqueIndex"`

	SenderName    string
	SenderPhone   *string `gorm:"size:10"`
	ReceiverName  string
	ReceiverPhone string `gorm:"size:10;index"`

	PickupAddress   string
	DeliveryAddress string
	BranchID        *uuid.UUID `gorm:"type:uuid"`

	Status     string     `gorm:"size:20;index"`
	AssignedTo *uuid.UUID `gorm:"type:uuid;index"`

	Weight        *float64
	Distance      *float64
	Price         *float64
	PaymentStatus *string `gorm:"size:10"`
	PaymentMethod *string `gorm:"size:10"`
	DeliveryType  string  `gorm:"size:10"`

	PodID     *uuid.UUID `gorm:"type:uuid"`
	InvoiceID *uuid.UUID `gorm:"type:uuid"`

	Notes                string
	ExpectedDeliveryDate string
	BookedBy             *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var senderPhone *string
	if p := aggregate.SenderPhone(); p != nil {
		s := p.String()
		senderPhone = &s
	}

	var paymentStatus *string
	if ps := aggregate.PaymentStatus(); ps != nil {
		s := ps.String()
		paymentStatus = &s
	}

	var paymentMethod *string
	if pm := aggregate.PaymentMethod(); pm != nil {
		s := pm.String()
		paymentMethod = &s
	}

	return ShipmentDTO{
		ID:                   aggregate.ID().Bytes(),
		TrackingID:           aggregate.TrackingID(),
		SenderName:           aggregate.SenderName(),
		SenderPhone:          senderPhone,
		ReceiverName:         aggregate.ReceiverName(),
		ReceiverPhone:        aggregate.ReceiverPhone().String(),
		PickupAddress:        aggregate.PickupAddress(),
		DeliveryAddress:      aggregate.DeliveryAddress(),
		BranchID:             rawUUID(aggregate.BranchID()),
		Status:               aggregate.Status().String(),
		AssignedTo:           rawUUID(aggregate.AssignedTo()),
		Weight:               aggregate.Weight(),
		Distance:             aggregate.Distance(),
		Price:                aggregate.Price(),
		PaymentStatus:        paymentStatus,
		PaymentMethod:        paymentMethod,
		DeliveryType:         aggregate.DeliveryType().String(),
		PodID:                rawUUID(aggregate.PodID()),
		InvoiceID:            rawUUID(aggregate.InvoiceID()),
		Notes:                aggregate.Notes(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		BookedBy:             rawUUID(aggregate.BookedBy()),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	receiverPhone, err := kernel.NewPhone(dto.ReceiverPhone)
	if err != nil {
		return nil, err
	}

	var senderPhone *kernel.Phone
	if dto.SenderPhone != nil {
		p, phoneErr := kernel.NewPhone(*dto.SenderPhone)
		if phoneErr != nil {
			return nil, phoneErr
		}
		senderPhone = &p
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	deliveryType, err := shipment.DeliveryTypeFromString(dto.DeliveryType)
	if err != nil {
		return nil, err
	}

	var paymentStatus *shipment.PaymentStatus
	if dto.PaymentStatus != nil {
		ps, psErr := shipment.PaymentStatusFromString(*dto.PaymentStatus)
		if psErr != nil {
			return nil, psErr
		}
		paymentStatus = &ps
	}

	var paymentMethod *shipment.PaymentMethod
	if dto.PaymentMethod != nil {
		pm, pmErr := shipment.PaymentMethodFromString(*dto.PaymentMethod)
		if pmErr != nil {
			return nil, pmErr
		}
		paymentMethod = &pm
	}

	branchID, err := kernelUUID(dto.BranchID)
	if err != nil {
		return nil, err
	}
	assignedTo, err := kernelUUID(dto.AssignedTo)
	if err != nil {
		return nil, err
	}
	podID, err := kernelUUID(dto.PodID)
	if err != nil {
		return nil, err
	}
	invoiceID, err := kernelUUID(dto.InvoiceID)
	if err != nil {
		return nil, err
	}
	bookedBy, err := kernelUUID(dto.BookedBy)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(shipment.RestoreShipmentParams{
		ID:                   id,
		TrackingID:           dto.TrackingID,
		SenderName:           dto.SenderName,
		SenderPhone:          senderPhone,
		ReceiverName:         dto.ReceiverName,
		ReceiverPhone:        receiverPhone,
		PickupAddress:        dto.PickupAddress,
		DeliveryAddress:      dto.DeliveryAddress,
		BranchID:             branchID,
		Status:               status,
		AssignedTo:           assignedTo,
		Weight:               dto.Weight,
		Distance:             dto.Distance,
		Price:                dto.Price,
		PaymentStatus:        paymentStatus,
		PaymentMethod:        paymentMethod,
		DeliveryType:         deliveryType,
		PodID:                podID,
		InvoiceID:            invoiceID,
		Notes:                dto.Notes,
		ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
		BookedBy:             bookedBy,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
	})
}

func rawUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
