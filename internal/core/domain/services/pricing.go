package services

import "courier/internal/core/domain/model/shipment"

// Pricing constants. The price formula is
//
//	base = weight*PricePerKg + distance*PricePerKm + BaseFee
//
// multiplied by ExpressMultiplier for express shipments.
const (
	BaseFee           = 10.0
	PricePerKg        = 5.0
	PricePerKm        = 2.0
	ExpressMultiplier = 1.5
)

// PricingCalculator derives a shipment's price from its billing inputs.
// It is deterministic and side-effect free. Creation and edit paths both
// go through ComputePrice so the formula cannot drift between call sites.
type PricingCalculator struct{}

// NewPricingCalculator creates the calculator.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// ComputePrice returns the price for the given inputs, or nil when either
// weight or distance is absent. Bounds checking happens in the aggregate's
// setters; by the time inputs reach here they are valid.
func (PricingCalculator) ComputePrice(weight, distance *float64, deliveryType shipment.DeliveryType) *float64 {
	if weight == nil || distance == nil {
		return nil
	}

	price := *weight*PricePerKg + *distance*PricePerKm + BaseFee
	if deliveryType == shipment.DeliveryTypeExpress {
		price *= ExpressMultiplier
	}
	return &price
}
