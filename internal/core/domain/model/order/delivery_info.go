package order

import (
	"errors"
	"fmt"
	"regexp"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// MaxAddressLength is the maximum accepted length of a delivery address.
const MaxAddressLength = 500

// ErrDeliveryInfoIsNotConstructed is returned when attempting to use an
// improperly initialized DeliveryInfo. Delivery info must be created via the
// NewDeliveryInfo constructor.
var ErrDeliveryInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery info must be created via NewDeliveryInfo constructor")

// recipientPhonePattern matches an 11-digit mainland mobile number.
var recipientPhonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// DeliveryInfo is an immutable value object describing where and to whom an
// order is delivered. The recipient phone must be a valid 11-digit mobile
// number and the address is capped at MaxAddressLength characters.
//
// Example:
//
//	info, err := order.NewDeliveryInfo("Zhang Wei", "13812345678", "88 Nanjing Rd")
//	if err != nil {
//	    // handle validation error
//	}
type DeliveryInfo struct { //nolint:recvcheck //using for validation
	recipientName  string
	recipientPhone string
	address        string

	guard guard.ConstructorGuard
}

// NewDeliveryInfo creates validated delivery details for an order.
func NewDeliveryInfo(recipientName string, recipientPhone string, address string) (DeliveryInfo, error) {
	info := DeliveryInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		info.setRecipientName(recipientName),
		info.setRecipientPhone(recipientPhone),
		info.setAddress(address),
	); err != nil {
		return DeliveryInfo{}, err
	}

	return info, nil
}

// Validate ensures the delivery info was created through the constructor.
func (d DeliveryInfo) Validate() error {
	return d.guard.Validate(ErrDeliveryInfoIsNotConstructed)
}

// RecipientName returns the name of the person receiving the order.
func (d DeliveryInfo) RecipientName() string {
	return d.recipientName
}

// RecipientPhone returns the recipient's mobile number.
func (d DeliveryInfo) RecipientPhone() string {
	return d.recipientPhone
}

// Address returns the delivery address.
func (d DeliveryInfo) Address() string {
	return d.address
}

// IsEqual compares two delivery infos field by field.
func (d DeliveryInfo) IsEqual(other DeliveryInfo) bool {
	return d.recipientName == other.recipientName &&
		d.recipientPhone == other.recipientPhone &&
		d.address == other.address
}

func (d *DeliveryInfo) setRecipientName(recipientName string) error {
	if recipientName == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}

	d.recipientName = recipientName
	return nil
}

func (d *DeliveryInfo) setRecipientPhone(recipientPhone string) error {
	if recipientPhone == "" {
		return errs.NewValueIsRequiredError("recipientPhone")
	}
	if !recipientPhonePattern.MatchString(recipientPhone) {
		return errs.NewValueIsInvalidErrorWithCause("recipientPhone",
			fmt.Errorf("%q is not a valid mobile number", recipientPhone))
	}

	d.recipientPhone = recipientPhone
	return nil
}

func (d *DeliveryInfo) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if len([]rune(address)) > MaxAddressLength {
		return errs.NewValueIsOutOfRangeError("address length", len([]rune(address)), 1, MaxAddressLength)
	}

	d.address = address
	return nil
}
