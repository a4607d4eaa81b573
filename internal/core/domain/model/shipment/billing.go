package shipment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// DeliveryType selects the pricing multiplier for a shipment.
type DeliveryType string

const (
	// DeliveryTypeNormal is standard delivery at the base rate.
	DeliveryTypeNormal DeliveryType = "normal"
	// DeliveryTypeExpress multiplies the computed price by 1.5.
	DeliveryTypeExpress DeliveryType = "express"
)

// DeliveryTypeFromString parses a delivery type value.
func DeliveryTypeFromString(s string) (DeliveryType, error) {
	switch DeliveryType(s) {
	case DeliveryTypeNormal, DeliveryTypeExpress:
		return DeliveryType(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("deliveryType",
			fmt.Errorf("%q is not a valid delivery type", s))
	}
}

// Validate checks the delivery type is one of the known values.
func (d DeliveryType) Validate() error {
	_, err := DeliveryTypeFromString(string(d))
	return err
}

func (d DeliveryType) String() string {
	return string(d)
}

// PaymentStatus tracks whether the shipment has been paid for.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPending PaymentStatus = "pending"
)

// PaymentStatusFromString parses a payment status value.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusPending:
		return PaymentStatus(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%q is not a valid payment status", s))
	}
}

// Validate checks the payment status is one of the known values.
func (p PaymentStatus) Validate() error {
	_, err := PaymentStatusFromString(string(p))
	return err
}

func (p PaymentStatus) String() string {
	return string(p)
}

// PaymentMethod records how the shipment is paid.
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodPrepaid PaymentMethod = "prepaid"
)

// PaymentMethodFromString parses a payment method value.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodPrepaid:
		return PaymentMethod(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a valid payment method", s))
	}
}

// Validate checks the payment method is one of the known values.
func (p PaymentMethod) Validate() error {
	_, err := PaymentMethodFromString(string(p))
	return err
}

func (p PaymentMethod) String() string {
	return string(p)
}
