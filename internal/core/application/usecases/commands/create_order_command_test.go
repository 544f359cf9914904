package commands_test

import (
	"strings"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItemInputs() []commands.ItemInput {
	return []commands.ItemInput{
		{DishID: "d1", DishName: "Kung Pao Chicken", Quantity: 2, Price: decimal.RequireFromString("15.00")},
		{DishID: "d2", DishName: "Spring Rolls", Quantity: 1, Price: decimal.RequireFromString("8.50")},
	}
}

func validDeliveryInput() commands.DeliveryInput {
	return commands.DeliveryInput{
		RecipientName:  "Zhang Wei",
		RecipientPhone: "13812345678",
		Address:        "88 Nanjing Rd",
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("u1", "m1", validItemInputs(), validDeliveryInput(), "no onions")
	require.NoError(t, err)
	assert.Equal(t, "u1", cmd.UserID())
	assert.Equal(t, "m1", cmd.MerchantID())
	assert.Equal(t, "no onions", cmd.Remark())
	assert.Len(t, cmd.Items(), 2)
	assert.Equal(t, "Zhang Wei", cmd.DeliveryInfo().RecipientName())
}

func TestNewCreateOrderCommand_EmptyUserID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", "m1", validItemInputs(), validDeliveryInput(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_EmptyMerchantID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("u1", "", validItemInputs(), validDeliveryInput(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("u1", "m1", nil, validDeliveryInput(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_InvalidItem(t *testing.T) {
	items := validItemInputs()
	items[1].Quantity = 0
	_, err := commands.NewCreateOrderCommand("u1", "m1", items, validDeliveryInput(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items[1]")
}

func TestNewCreateOrderCommand_NegativeItemPrice(t *testing.T) {
	items := validItemInputs()
	items[0].Price = decimal.RequireFromString("-1.00")
	_, err := commands.NewCreateOrderCommand("u1", "m1", items, validDeliveryInput(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items[0]")
}

func TestNewCreateOrderCommand_InvalidPhone(t *testing.T) {
	delivery := validDeliveryInput()
	delivery.RecipientPhone = "12345"
	_, err := commands.NewCreateOrderCommand("u1", "m1", validItemInputs(), delivery, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_RemarkTooLong(t *testing.T) {
	remark := strings.Repeat("x", order.MaxRemarkLength+1)
	_, err := commands.NewCreateOrderCommand("u1", "m1", validItemInputs(), validDeliveryInput(), remark)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreateOrderCommand_CollectsAllFailures(t *testing.T) {
	delivery := validDeliveryInput()
	delivery.RecipientName = ""
	_, err := commands.NewCreateOrderCommand("", "m1", nil, delivery, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "userId")
	assert.Contains(t, err.Error(), "items")
}
