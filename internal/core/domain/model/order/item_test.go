package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	price, err := kernel.MoneyFromString("15.00")
	require.NoError(t, err)

	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem("d1", "Kung Pao Chicken", 2, price)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "d1", item.DishID())
		assert.Equal(t, "Kung Pao Chicken", item.DishName())
		assert.Equal(t, 2, item.Quantity())
		assert.True(t, price.IsEqual(item.Price()))
	})

	t.Run("should fail with empty dish id", func(t *testing.T) {
		_, err := order.NewItem("", "Kung Pao Chicken", 2, price)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dishId")
	})

	t.Run("should fail with empty dish name", func(t *testing.T) {
		_, err := order.NewItem("d1", "", 2, price)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dishName")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem("d1", "Kung Pao Chicken", 0, price)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewItem("d1", "Kung Pao Chicken", -3, price)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var badPrice kernel.Money

		_, err := order.NewItem("d1", "Kung Pao Chicken", 2, badPrice)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("should report all validation errors at once", func(t *testing.T) {
		var badPrice kernel.Money

		_, err := order.NewItem("", "", 0, badPrice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dishId")
		assert.Contains(t, err.Error(), "dishName")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}

func TestItem_Total(t *testing.T) {
	t.Run("should multiply price by quantity exactly", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("8.50")
		item, err := order.NewItem("d2", "Spring Rolls", 3, price)
		require.NoError(t, err)

		total, err := item.Total()

		require.NoError(t, err)
		assert.Equal(t, "25.50", total.String())
	})

	t.Run("zero value cannot compute a total", func(t *testing.T) {
		var item order.Item

		_, err := item.Total()

		require.Error(t, err)
	})
}

func TestItem_IsEqual(t *testing.T) {
	price, _ := kernel.MoneyFromString("15.00")
	a, _ := order.NewItem("d1", "Kung Pao Chicken", 2, price)
	b, _ := order.NewItem("d1", "Kung Pao Chicken", 2, price)
	c, _ := order.NewItem("d1", "Kung Pao Chicken", 3, price)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
