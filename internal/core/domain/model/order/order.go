package order

import (
	"errors"
	"slices"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// MaxRemarkLength is the maximum accepted length of the optional order remark.
const MaxRemarkLength = 200

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a placed food-delivery order. It is the aggregate root
// combining the customer's cart, the delivery details, and the computed
// pricing breakdown.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Must belong to a user and a merchant, fixed at creation
//   - Must contain at least one item, each with quantity >= 1
//   - Pricing must satisfy finalAmount = itemsTotal + packagingFee + deliveryFee
//   - Status starts at Created; this service performs no further transitions
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated construction. Orders are never mutated after
// construction.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-facing order number, distinct from id
	number string

	// userID identifies the customer who placed the order (ownership, immutable)
	userID string

	// merchantID identifies the merchant the order was placed with
	merchantID string

	// items is the non-empty ordered list of dish lines
	items []Item

	// deliveryInfo describes where and to whom the order is delivered
	deliveryInfo DeliveryInfo

	// remark is an optional customer note, capped at MaxRemarkLength
	remark string

	// status is the lifecycle state, always Created for new orders
	status Status

	// pricing is the validated monetary breakdown
	pricing Pricing

	// createdAt is the placement timestamp (UTC)
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to place
// a valid order, ensuring all business invariants are maintained.
//
// The identifier and order number are expected to be freshly generated per
// call; the status is set to Created and the placement timestamp is stamped
// with the current UTC time. The constructor has no side effects beyond
// building the in-memory value; persistence is the caller's responsibility.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), number, userID, merchantID,
//	    items, deliveryInfo, remark, pricing)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	number string,
	userID string,
	merchantID string,
	items []Item,
	deliveryInfo DeliveryInfo,
	remark string,
	pricing Pricing,
) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(userID),
		o.setMerchantID(merchantID),
		o.setItems(items),
		o.setDeliveryInfo(deliveryInfo),
		o.setRemark(remark),
		o.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// All invariants are re-checked, including the stored status and timestamp,
// so corrupted rows cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	number string,
	userID string,
	merchantID string,
	items []Item,
	deliveryInfo DeliveryInfo,
	remark string,
	status Status,
	pricing Pricing,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(userID),
		o.setMerchantID(merchantID),
		o.setItems(items),
		o.setDeliveryInfo(deliveryInfo),
		o.setRemark(remark),
		o.setPricing(pricing),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() string {
	return o.number
}

// UserID returns the identifier of the customer who owns the order.
func (o *Order) UserID() string {
	return o.userID
}

// MerchantID returns the identifier of the merchant.
func (o *Order) MerchantID() string {
	return o.merchantID
}

// Items returns the order's dish lines.
// The returned slice is a copy; callers cannot mutate the aggregate.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// DeliveryInfo returns the delivery details.
func (o *Order) DeliveryInfo() DeliveryInfo {
	return o.deliveryInfo
}

// Remark returns the optional customer note, empty when not provided.
func (o *Order) Remark() string {
	return o.remark
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Pricing returns the monetary breakdown.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setMerchantID(merchantID string) error {
	if merchantID == "" {
		return errs.NewValueIsRequiredError("merchantId")
	}
	o.merchantID = merchantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var itemErrs []error
	for _, item := range items {
		itemErrs = append(itemErrs, item.Validate())
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setDeliveryInfo(deliveryInfo DeliveryInfo) error {
	if err := deliveryInfo.Validate(); err != nil {
		return err
	}
	o.deliveryInfo = deliveryInfo
	return nil
}

func (o *Order) setRemark(remark string) error {
	if len([]rune(remark)) > MaxRemarkLength {
		return errs.NewValueIsOutOfRangeError("remark length", len([]rune(remark)), 0, MaxRemarkLength)
	}
	o.remark = remark
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
