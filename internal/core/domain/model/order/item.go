package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when attempting to use an improperly
// initialized Item. Items must be created via the NewItem constructor.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem constructor")

// Item is an immutable value object describing one dish line of an order:
// which dish, how it is displayed, how many, and the unit price captured at
// ordering time. Once attached to an order an item never changes.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("15.00")
//	item, err := order.NewItem("d1", "Kung Pao Chicken", 2, price)
//	if err != nil {
//	    // handle validation error
//	}
type Item struct { //nolint:recvcheck //using for validation
	dishID   string
	dishName string
	quantity int
	price    kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a validated order item.
// The dish ID and name must not be empty, quantity must be at least 1, and
// the unit price must be a properly constructed (non-negative) Money value.
func NewItem(dishID string, dishName string, quantity int, price kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setDishID(dishID),
		item.setDishName(dishName),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// DishID returns the identifier of the ordered dish.
func (i Item) DishID() string {
	return i.dishID
}

// DishName returns the display name of the ordered dish.
func (i Item) DishName() string {
	return i.dishName
}

// Quantity returns how many units of the dish were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price captured when the order was placed.
func (i Item) Price() kernel.Money {
	return i.price
}

// Total returns the line total: unit price multiplied by quantity,
// computed with exact decimal arithmetic.
func (i Item) Total() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.price.MulInt(i.quantity)
}

// IsEqual compares two items field by field.
func (i Item) IsEqual(other Item) bool {
	return i.dishID == other.dishID &&
		i.dishName == other.dishName &&
		i.quantity == other.quantity &&
		i.price.IsEqual(other.price)
}

func (i *Item) setDishID(dishID string) error {
	if dishID == "" {
		return errs.NewValueIsRequiredError("dishId")
	}

	i.dishID = dishID
	return nil
}

func (i *Item) setDishName(dishName string) error {
	if dishName == "" {
		return errs.NewValueIsRequiredError("dishName")
	}

	i.dishName = dishName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	i.price = price
	return nil
}
