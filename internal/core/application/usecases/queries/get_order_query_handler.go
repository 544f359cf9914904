package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// OrderReader provides read access to persisted order aggregates.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// GetOrderQueryHandler retrieves a single order for its owner.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(reader)
//	query, _ := NewGetOrderQuery(orderID, userID)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Order %s total %s\n", response.Number, response.Pricing.FinalAmount)
type GetOrderQueryHandler struct {
	reader OrderReader
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle executes the lookup and projects the aggregate into a response.
// A missing order yields an error wrapping errs.ErrObjectNotFound. An order
// owned by a different user yields an error wrapping errs.ErrAccessDenied;
// boundaries must render both identically.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if aggregate.UserID() != query.UserID() {
		return GetOrderQueryResponse{}, errs.NewAccessDeniedError("orderId", query.OrderID().String())
	}

	return projectOrder(aggregate), nil
}

func projectOrder(aggregate *order.Order) GetOrderQueryResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		total, _ := item.Total()
		items = append(items, OrderItemResponse{
			DishID:   item.DishID(),
			DishName: item.DishName(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
			Total:    total.Amount(),
		})
	}

	delivery := aggregate.DeliveryInfo()
	pricing := aggregate.Pricing()

	return GetOrderQueryResponse{
		ID:       aggregate.ID(),
		Number:   aggregate.Number(),
		UserID:   aggregate.UserID(),
		Merchant: aggregate.MerchantID(),
		Items:    items,
		Delivery: DeliveryInfoResponse{
			RecipientName:  delivery.RecipientName(),
			RecipientPhone: delivery.RecipientPhone(),
			Address:        delivery.Address(),
		},
		Remark: aggregate.Remark(),
		Status: aggregate.Status().String(),
		Pricing: PricingResponse{
			ItemsTotal:   pricing.ItemsTotal().Amount(),
			PackagingFee: pricing.PackagingFee().Amount(),
			DeliveryFee:  pricing.DeliveryFee().Amount(),
			FinalAmount:  pricing.FinalAmount().Amount(),
		},
		CreatedAt: aggregate.CreatedAt(),
	}
}
