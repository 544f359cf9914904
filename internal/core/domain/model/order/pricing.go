package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrPricingIsNotConstructed is returned when attempting to use an improperly
// initialized Pricing. Pricing must be created via NewPricing or
// RestorePricing.
var ErrPricingIsNotConstructed = errs.NewValueIsRequiredError(
	"pricing must be created via NewPricing or RestorePricing constructors")

// Pricing is an immutable value object holding the monetary breakdown of an
// order: items total, packaging fee, delivery fee, and the resulting final
// amount.
//
// Pricing maintains one invariant at all times:
//
//	finalAmount = itemsTotal + packagingFee + deliveryFee
//
// NewPricing computes the final amount itself, so a breakdown with a
// tampered final amount cannot be constructed; RestorePricing re-checks the
// invariant when a breakdown is rehydrated from storage.
type Pricing struct { //nolint:recvcheck //using for validation
	itemsTotal   kernel.Money
	packagingFee kernel.Money
	deliveryFee  kernel.Money
	finalAmount  kernel.Money

	guard guard.ConstructorGuard
}

// NewPricing creates a pricing breakdown from its components.
// The final amount is always computed here, never accepted from the caller.
func NewPricing(itemsTotal kernel.Money, packagingFee kernel.Money, deliveryFee kernel.Money) (Pricing, error) {
	p := Pricing{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setItemsTotal(itemsTotal),
		p.setPackagingFee(packagingFee),
		p.setDeliveryFee(deliveryFee),
	); err != nil {
		return Pricing{}, err
	}

	fees, err := packagingFee.Add(deliveryFee)
	if err != nil {
		return Pricing{}, err
	}
	p.finalAmount, err = itemsTotal.Add(fees)
	if err != nil {
		return Pricing{}, err
	}

	return p, nil
}

// RestorePricing reconstructs a pricing breakdown from persistence.
// Unlike NewPricing it accepts the stored final amount, but fails if the
// stored value no longer equals the sum of its components.
func RestorePricing(
	itemsTotal kernel.Money,
	packagingFee kernel.Money,
	deliveryFee kernel.Money,
	finalAmount kernel.Money,
) (Pricing, error) {
	p, err := NewPricing(itemsTotal, packagingFee, deliveryFee)
	if err != nil {
		return Pricing{}, err
	}

	if err = finalAmount.Validate(); err != nil {
		return Pricing{}, err
	}
	if !p.finalAmount.IsEqual(finalAmount) {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause("finalAmount",
			fmt.Errorf("%s does not equal %s + %s + %s",
				finalAmount, itemsTotal, packagingFee, deliveryFee))
	}

	return p, nil
}

// Validate ensures the pricing was created through a constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// ItemsTotal returns the exact sum of all item line totals.
func (p Pricing) ItemsTotal() kernel.Money {
	return p.itemsTotal
}

// PackagingFee returns the merchant's packaging fee.
func (p Pricing) PackagingFee() kernel.Money {
	return p.packagingFee
}

// DeliveryFee returns the delivery fee.
func (p Pricing) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// FinalAmount returns the amount the customer pays:
// itemsTotal + packagingFee + deliveryFee.
func (p Pricing) FinalAmount() kernel.Money {
	return p.finalAmount
}

// IsEqual compares two pricing breakdowns by numeric value of every component.
func (p Pricing) IsEqual(other Pricing) bool {
	return p.itemsTotal.IsEqual(other.itemsTotal) &&
		p.packagingFee.IsEqual(other.packagingFee) &&
		p.deliveryFee.IsEqual(other.deliveryFee) &&
		p.finalAmount.IsEqual(other.finalAmount)
}

func (p *Pricing) setItemsTotal(itemsTotal kernel.Money) error {
	if err := itemsTotal.Validate(); err != nil {
		return err
	}
	p.itemsTotal = itemsTotal
	return nil
}

func (p *Pricing) setPackagingFee(packagingFee kernel.Money) error {
	if err := packagingFee.Validate(); err != nil {
		return err
	}
	p.packagingFee = packagingFee
	return nil
}

func (p *Pricing) setDeliveryFee(deliveryFee kernel.Money) error {
	if err := deliveryFee.Validate(); err != nil {
		return err
	}
	p.deliveryFee = deliveryFee
	return nil
}
