package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewPricing(t *testing.T) {
	t.Run("should compute final amount from components", func(t *testing.T) {
		p, err := order.NewPricing(
			mustMoney(t, "38.50"),
			mustMoney(t, "2.00"),
			mustMoney(t, "5.00"),
		)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "38.50", p.ItemsTotal().String())
		assert.Equal(t, "2.00", p.PackagingFee().String())
		assert.Equal(t, "5.00", p.DeliveryFee().String())
		assert.Equal(t, "45.50", p.FinalAmount().String())
	})

	t.Run("should hold sum invariant with zero fees", func(t *testing.T) {
		p, err := order.NewPricing(mustMoney(t, "38.50"), kernel.ZeroMoney(), kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, p.ItemsTotal().IsEqual(p.FinalAmount()))
	})

	t.Run("should fail with unconstructed component", func(t *testing.T) {
		var badFee kernel.Money

		_, err := order.NewPricing(mustMoney(t, "38.50"), badFee, kernel.ZeroMoney())

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestRestorePricing(t *testing.T) {
	t.Run("should restore when stored final amount matches the sum", func(t *testing.T) {
		p, err := order.RestorePricing(
			mustMoney(t, "38.50"),
			mustMoney(t, "2.00"),
			mustMoney(t, "5.00"),
			mustMoney(t, "45.50"),
		)

		require.NoError(t, err)
		assert.Equal(t, "45.50", p.FinalAmount().String())
	})

	t.Run("should fail when stored final amount was tampered with", func(t *testing.T) {
		_, err := order.RestorePricing(
			mustMoney(t, "38.50"),
			mustMoney(t, "2.00"),
			mustMoney(t, "5.00"),
			mustMoney(t, "40.00"),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "finalAmount")
		assert.Contains(t, err.Error(), "does not equal")
	})

	t.Run("should accept numerically equal final amount with different scale", func(t *testing.T) {
		p, err := order.RestorePricing(
			mustMoney(t, "38.5"),
			mustMoney(t, "2"),
			mustMoney(t, "5"),
			mustMoney(t, "45.500"),
		)

		require.NoError(t, err)
		assert.Equal(t, "45.50", p.FinalAmount().String())
	})
}

func TestPricing_Validate(t *testing.T) {
	var p order.Pricing

	err := p.Validate()

	require.Error(t, err)
	assert.Equal(t, order.ErrPricingIsNotConstructed, err)
}

func TestPricing_IsEqual(t *testing.T) {
	a, _ := order.NewPricing(mustMoney(t, "38.50"), mustMoney(t, "2.00"), mustMoney(t, "5.00"))
	b, _ := order.NewPricing(mustMoney(t, "38.5"), mustMoney(t, "2"), mustMoney(t, "5"))
	c, _ := order.NewPricing(mustMoney(t, "38.50"), mustMoney(t, "2.00"), mustMoney(t, "6.00"))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
