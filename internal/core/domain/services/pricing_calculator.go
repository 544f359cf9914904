package services

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// FeePolicy supplies the packaging and delivery fees for an order.
// Implementations typically consult a merchant fee schedule; the policy is an
// external collaborator from the domain's point of view.
type FeePolicy interface {
	// Fees returns the packaging and delivery fee for the given merchant,
	// item list, and delivery destination.
	Fees(merchantID string, items []order.Item, deliveryInfo order.DeliveryInfo) (packagingFee kernel.Money, deliveryFee kernel.Money, err error)
}

// PricingCalculator is a domain service that computes the monetary breakdown
// of an order from its items and the configured fee policy.
//
// Key responsibilities:
//   - Summing item line totals with exact decimal arithmetic
//   - Applying the merchant's packaging and delivery fees
//   - Producing a Pricing whose final amount is always recomputed, so a
//     tampered amount from the request boundary can never reach an order
//
// Calculate is a pure function of its inputs: no I/O, no mutation, and
// deterministic for identical inputs (given a deterministic FeePolicy).
type PricingCalculator struct {
	feePolicy FeePolicy
}

// NewPricingCalculator creates a calculator using the given fee policy.
// A nil policy means no fees are configured: both fees default to zero.
func NewPricingCalculator(feePolicy FeePolicy) PricingCalculator {
	return PricingCalculator{feePolicy: feePolicy}
}

// Calculate computes the pricing breakdown for an order being placed.
//
// itemsTotal is the exact sum of price x quantity over all items; the
// packaging and delivery fees come from the fee policy; the final amount is
// their sum, computed inside order.NewPricing.
func (c PricingCalculator) Calculate(
	merchantID string,
	items []order.Item,
	deliveryInfo order.DeliveryInfo,
) (order.Pricing, error) {
	itemsTotal := kernel.ZeroMoney()
	for _, item := range items {
		lineTotal, err := item.Total()
		if err != nil {
			return order.Pricing{}, err
		}

		itemsTotal, err = itemsTotal.Add(lineTotal)
		if err != nil {
			return order.Pricing{}, err
		}
	}

	packagingFee, deliveryFee := kernel.ZeroMoney(), kernel.ZeroMoney()
	if c.feePolicy != nil {
		var err error
		packagingFee, deliveryFee, err = c.feePolicy.Fees(merchantID, items, deliveryInfo)
		if err != nil {
			return order.Pricing{}, err
		}
	}

	return order.NewPricing(itemsTotal, packagingFee, deliveryFee)
}

// FixedFeePolicy is a FeePolicy that charges the same packaging and delivery
// fee for every merchant and destination. It backs deployments where fees are
// set once in configuration rather than per merchant.
type FixedFeePolicy struct {
	packagingFee kernel.Money
	deliveryFee  kernel.Money
}

// NewFixedFeePolicy creates a policy charging the given flat fees.
// Both fees must be properly constructed Money values.
func NewFixedFeePolicy(packagingFee kernel.Money, deliveryFee kernel.Money) (FixedFeePolicy, error) {
	if err := packagingFee.Validate(); err != nil {
		return FixedFeePolicy{}, err
	}
	if err := deliveryFee.Validate(); err != nil {
		return FixedFeePolicy{}, err
	}

	return FixedFeePolicy{packagingFee: packagingFee, deliveryFee: deliveryFee}, nil
}

// Fees returns the configured flat fees regardless of merchant or destination.
func (p FixedFeePolicy) Fees(_ string, _ []order.Item, _ order.DeliveryInfo) (kernel.Money, kernel.Money, error) {
	return p.packagingFee, p.deliveryFee, nil
}
