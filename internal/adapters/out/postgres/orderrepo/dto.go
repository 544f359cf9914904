// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index as a backstop against generator
// collisions across process restarts; the user id is indexed for ownership
// lookups.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number     string         `gorm:"uniqueIndex"`
	UserID     string         `gorm:"index"`
	MerchantID string         `gorm:"index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Delivery   DeliveryDTO    `gorm:"embedded;embeddedPrefix:delivery_"`
	Remark     string
	Status     int
	Pricing    PricingDTO `gorm:"embedded;embeddedPrefix:pricing_"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one dish line of an order.
// The auto-incremented primary key preserves the insertion order of lines.
type OrderItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	DishID   string
	DishName string
	Quantity int
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// DeliveryDTO represents the embedded delivery details within the order table.
type DeliveryDTO struct {
	RecipientName  string
	RecipientPhone string
	Address        string
}

// PricingDTO represents the embedded monetary breakdown within the order table.
// Amounts are stored as numeric columns so the database sums them exactly.
type PricingDTO struct {
	ItemsTotal   decimal.Decimal `gorm:"type:numeric(12,2)"`
	PackagingFee decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee  decimal.Decimal `gorm:"type:numeric(12,2)"`
	FinalAmount  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			DishID:   item.DishID(),
			DishName: item.DishName(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
		})
	}

	delivery := aggregate.DeliveryInfo()
	pricing := aggregate.Pricing()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		Number:     aggregate.Number(),
		UserID:     aggregate.UserID(),
		MerchantID: aggregate.MerchantID(),
		Items:      items,
		Delivery: DeliveryDTO{
			RecipientName:  delivery.RecipientName(),
			RecipientPhone: delivery.RecipientPhone(),
			Address:        delivery.Address(),
		},
		Remark: aggregate.Remark(),
		Status: int(aggregate.Status()),
		Pricing: PricingDTO{
			ItemsTotal:   pricing.ItemsTotal().Amount(),
			PackagingFee: pricing.PackagingFee().Amount(),
			DeliveryFee:  pricing.DeliveryFee().Amount(),
			FinalAmount:  pricing.FinalAmount().Amount(),
		},
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, so stored rows that
// violate domain invariants surface as errors instead of invalid aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	var itemErrs []error
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			itemErrs = append(itemErrs, priceErr)
			continue
		}

		item, itemErr := order.NewItem(itemDTO.DishID, itemDTO.DishName, itemDTO.Quantity, price)
		if itemErr != nil {
			itemErrs = append(itemErrs, itemErr)
			continue
		}

		items = append(items, item)
	}
	if err = errors.Join(itemErrs...); err != nil {
		return nil, err
	}

	deliveryInfo, err := order.NewDeliveryInfo(
		dto.Delivery.RecipientName,
		dto.Delivery.RecipientPhone,
		dto.Delivery.Address,
	)
	if err != nil {
		return nil, err
	}

	pricing, err := restorePricing(dto.Pricing)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		dto.UserID,
		dto.MerchantID,
		items,
		deliveryInfo,
		dto.Remark,
		order.Status(dto.Status),
		pricing,
		dto.CreatedAt,
	)
}

func restorePricing(dto PricingDTO) (order.Pricing, error) {
	itemsTotal, err := kernel.NewMoney(dto.ItemsTotal)
	if err != nil {
		return order.Pricing{}, err
	}
	packagingFee, err := kernel.NewMoney(dto.PackagingFee)
	if err != nil {
		return order.Pricing{}, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Pricing{}, err
	}
	finalAmount, err := kernel.NewMoney(dto.FinalAmount)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.RestorePricing(itemsTotal, packagingFee, deliveryFee, finalAmount)
}
