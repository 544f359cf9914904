package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput carries one raw dish line as received from the caller.
// It is converted into an order.Item value object during command construction.
type ItemInput struct {
	DishID   string
	DishName string
	Quantity int
	Price    decimal.Decimal
}

// DeliveryInput carries the raw delivery details as received from the caller.
type DeliveryInput struct {
	RecipientName  string
	RecipientPhone string
	Address        string
}

// CreateOrderCommand represents a request to place a new food order.
// Construction converts the raw inputs into validated domain value objects,
// so a command that exists is a command whose payload already passed
// field-level validation. All validation failures for a request are joined
// into a single error.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, merchantID, items, delivery, remark)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID       string
	merchantID   string
	items        []order.Item
	deliveryInfo order.DeliveryInfo
	remark       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that user and merchant identifiers are present, that at least one
// item is provided and each converts into a valid order.Item, that the
// delivery details form a valid order.DeliveryInfo, and that the remark fits
// the allowed length. Returns an error joining every validation failure.
func NewCreateOrderCommand(
	userID string,
	merchantID string,
	items []ItemInput,
	delivery DeliveryInput,
	remark string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setMerchantID(merchantID),
		orderCommand.setItems(items),
		orderCommand.setDeliveryInfo(delivery),
		orderCommand.setRemark(remark),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) UserID() string {
	return c.userID
}

// MerchantID returns the identifier of the merchant the order targets.
func (c CreateOrderCommand) MerchantID() string {
	return c.merchantID
}

// Items returns the validated dish lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// DeliveryInfo returns the validated delivery details.
func (c CreateOrderCommand) DeliveryInfo() order.DeliveryInfo {
	return c.deliveryInfo
}

// Remark returns the optional customer note.
func (c CreateOrderCommand) Remark() string {
	return c.remark
}

func (c *CreateOrderCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setMerchantID(merchantID string) error {
	if merchantID == "" {
		return errs.NewValueIsRequiredError("merchantId")
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	converted := make([]order.Item, 0, len(items))
	var itemErrs []error
	for i, input := range items {
		price, err := kernel.NewMoney(input.Price)
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}

		item, err := order.NewItem(input.DishID, input.DishName, input.Quantity, price)
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}

		converted = append(converted, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = converted
	return nil
}

func (c *CreateOrderCommand) setDeliveryInfo(delivery DeliveryInput) error {
	deliveryInfo, err := order.NewDeliveryInfo(
		delivery.RecipientName,
		delivery.RecipientPhone,
		delivery.Address,
	)
	if err != nil {
		return err
	}

	c.deliveryInfo = deliveryInfo
	return nil
}

func (c *CreateOrderCommand) setRemark(remark string) error {
	if length := len([]rune(remark)); length > order.MaxRemarkLength {
		return errs.NewValueIsOutOfRangeError("remark length", length, 0, order.MaxRemarkLength)
	}

	c.remark = remark
	return nil
}
