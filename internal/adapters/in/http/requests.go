package http

import (
	"github.com/go-playground/validator/v10"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for all request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate runs struct validation on a bound request.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// CreateShipmentRequest is the body for POST /api/v1/shipments.
type CreateShipmentRequest struct {
	SenderName    string  `json:"senderName" validate:"required"`
	SenderPhone   *string `json:"senderPhone" validate:"omitempty,len=10,numeric"`
	ReceiverName  string  `json:"receiverName" validate:"required"`
	ReceiverPhone string  `json:"receiverPhone" validate:"required,len=10,numeric"`

	PickupAddress   string  `json:"pickupAddress" validate:"required"`
	DeliveryAddress string  `json:"deliveryAddress" validate:"required"`
	BranchID        *string `json:"branchId" validate:"omitempty,uuid"`

	Weight        *float64 `json:"weight" validate:"omitempty,gt=0"`
	Distance      *float64 `json:"distance" validate:"omitempty,gt=0"`
	DeliveryType  *string  `json:"deliveryType" validate:"omitempty,oneof=normal express"`
	PaymentStatus *string  `json:"paymentStatus" validate:"omitempty,oneof=paid unpaid pending"`
	PaymentMethod *string  `json:"paymentMethod" validate:"omitempty,oneof=cash card prepaid"`

	Notes                string `json:"notes"`
	ExpectedDeliveryDate string `json:"expectedDeliveryDate"`
}

func (r CreateShipmentRequest) toParams() (shipment.NewShipmentParams, error) {
	receiverPhone, err := kernel.NewPhone(r.ReceiverPhone)
	if err != nil {
		return shipment.NewShipmentParams{}, err
	}

	params := shipment.NewShipmentParams{
		SenderName:           r.SenderName,
		ReceiverName:         r.ReceiverName,
		ReceiverPhone:        receiverPhone,
		PickupAddress:        r.PickupAddress,
		DeliveryAddress:      r.DeliveryAddress,
		Weight:               r.Weight,
		Distance:             r.Distance,
		Notes:                r.Notes,
		ExpectedDeliveryDate: r.ExpectedDeliveryDate,
	}

	if r.SenderPhone != nil {
		phone, phoneErr := kernel.NewPhone(*r.SenderPhone)
		if phoneErr != nil {
			return shipment.NewShipmentParams{}, phoneErr
		}
		params.SenderPhone = &phone
	}

	if r.BranchID != nil {
		branchID, idErr := kernel.UUIDFromString(*r.BranchID)
		if idErr != nil {
			return shipment.NewShipmentParams{}, idErr
		}
		params.BranchID = &branchID
	}

	if r.DeliveryType != nil {
		deliveryType, dtErr := shipment.DeliveryTypeFromString(*r.DeliveryType)
		if dtErr != nil {
			return shipment.NewShipmentParams{}, dtErr
		}
		params.DeliveryType = deliveryType
	}

	if r.PaymentStatus != nil {
		status, psErr := shipment.PaymentStatusFromString(*r.PaymentStatus)
		if psErr != nil {
			return shipment.NewShipmentParams{}, psErr
		}
		params.PaymentStatus = &status
	}

	if r.PaymentMethod != nil {
		method, pmErr := shipment.PaymentMethodFromString(*r.PaymentMethod)
		if pmErr != nil {
			return shipment.NewShipmentParams{}, pmErr
		}
		params.PaymentMethod = &method
	}

	return params, nil
}

// UpdateShipmentRequest is the body for PATCH /api/v1/shipments/:id. Absent
// fields leave the shipment untouched.
type UpdateShipmentRequest struct {
	SenderName    *string `json:"senderName" validate:"omitempty,min=1"`
	SenderPhone   *string `json:"senderPhone" validate:"omitempty,len=10,numeric"`
	ReceiverName  *string `json:"receiverName" validate:"omitempty,min=1"`
	ReceiverPhone *string `json:"receiverPhone" validate:"omitempty,len=10,numeric"`

	PickupAddress   *string `json:"pickupAddress" validate:"omitempty,min=1"`
	DeliveryAddress *string `json:"deliveryAddress" validate:"omitempty,min=1"`
	BranchID        *string `json:"branchId" validate:"omitempty,uuid"`

	Weight        *float64 `json:"weight" validate:"omitempty,gt=0"`
	Distance      *float64 `json:"distance" validate:"omitempty,gt=0"`
	DeliveryType  *string  `json:"deliveryType" validate:"omitempty,oneof=normal express"`
	PaymentStatus *string  `json:"paymentStatus" validate:"omitempty,oneof=paid unpaid pending"`
	PaymentMethod *string  `json:"paymentMethod" validate:"omitempty,oneof=cash card prepaid"`

	Notes                *string `json:"notes"`
	ExpectedDeliveryDate *string `json:"expectedDeliveryDate"`
}

func (r UpdateShipmentRequest) toPatch() (shipment.Patch, error) {
	patch := shipment.Patch{
		SenderName:           r.SenderName,
		ReceiverName:         r.ReceiverName,
		PickupAddress:        r.PickupAddress,
		DeliveryAddress:      r.DeliveryAddress,
		Weight:               r.Weight,
		Distance:             r.Distance,
		Notes:                r.Notes,
		ExpectedDeliveryDate: r.ExpectedDeliveryDate,
	}

	if r.SenderPhone != nil {
		phone, err := kernel.NewPhone(*r.SenderPhone)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.SenderPhone = &phone
	}
	if r.ReceiverPhone != nil {
		phone, err := kernel.NewPhone(*r.ReceiverPhone)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.ReceiverPhone = &phone
	}
	if r.BranchID != nil {
		branchID, err := kernel.UUIDFromString(*r.BranchID)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.BranchID = &branchID
	}
	if r.DeliveryType != nil {
		deliveryType, err := shipment.DeliveryTypeFromString(*r.DeliveryType)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.DeliveryType = &deliveryType
	}
	if r.PaymentStatus != nil {
		status, err := shipment.PaymentStatusFromString(*r.PaymentStatus)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.PaymentStatus = &status
	}
	if r.PaymentMethod != nil {
		method, err := shipment.PaymentMethodFromString(*r.PaymentMethod)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.PaymentMethod = &method
	}

	return patch, nil
}

// ChangeStatusRequest is the body for POST /api/v1/shipments/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignAgentRequest is the body for POST /api/v1/shipments/:id/assign.
type AssignAgentRequest struct {
	AgentID string `json:"agentId" validate:"required,uuid"`
}

// CompleteDeliveryRequest is the body for POST /api/v1/shipments/:id/delivery.
// Signature and photo are base64-encoded image bytes.
type CompleteDeliveryRequest struct {
	SigneeName string   `json:"signeeName" validate:"required,min=3"`
	Signature  string   `json:"signature" validate:"required,base64"`
	Photo      string   `json:"photo" validate:"omitempty,base64"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// CreateBranchRequest is the body for POST /api/v1/branches.
type CreateBranchRequest struct {
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address" validate:"required"`
	Phone     string  `json:"phone" validate:"omitempty,len=10,numeric"`
	ManagerID *string `json:"managerId" validate:"omitempty,uuid"`
}
