package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Response is the envelope every endpoint returns.
// Code is 0 on success and mirrors the HTTP status on failure; Data is only
// present on success.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func successResponse(data any) Response {
	return Response{Code: 0, Message: "ok", Data: data}
}

func errorResponse(code int, message string) Response {
	return Response{Code: code, Message: message}
}

// CreateOrderRequest is the payload of POST /api/v1/orders.
// The user placing the order is taken from the X-User-Id header, not the body.
type CreateOrderRequest struct {
	MerchantID   string             `json:"merchantId"`
	Items        []OrderItemRequest `json:"items"`
	DeliveryInfo DeliveryRequest    `json:"deliveryInfo"`
	Remark       string             `json:"remark"`
}

// OrderItemRequest is one dish line of an order request.
// Price accepts both JSON numbers and strings; strings avoid client-side
// float rounding.
type OrderItemRequest struct {
	DishID   string          `json:"dishId"`
	DishName string          `json:"dishName"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// DeliveryRequest carries the delivery details of an order request.
type DeliveryRequest struct {
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	Address        string `json:"address"`
}

// CreateOrderResponse is the success payload of POST /api/v1/orders.
type CreateOrderResponse struct {
	OrderID     string          `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	Status      string          `json:"status"`
	Pricing     PricingResponse `json:"pricing"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// OrderResponse is the success payload of GET /api/v1/orders/{orderId}.
type OrderResponse struct {
	OrderID      string              `json:"orderId"`
	OrderNumber  string              `json:"orderNumber"`
	UserID       string              `json:"userId"`
	MerchantID   string              `json:"merchantId"`
	Items        []OrderItemResponse `json:"items"`
	DeliveryInfo DeliveryResponse    `json:"deliveryInfo"`
	Remark       string              `json:"remark,omitempty"`
	Status       string              `json:"status"`
	Pricing      PricingResponse     `json:"pricing"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// OrderItemResponse is one dish line of an order projection.
type OrderItemResponse struct {
	DishID   string `json:"dishId"`
	DishName string `json:"dishName"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
}

// DeliveryResponse carries the delivery details of an order projection.
type DeliveryResponse struct {
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	Address        string `json:"address"`
}

// PricingResponse carries the monetary breakdown.
// Amounts are fixed two-decimal strings so clients never touch floats.
type PricingResponse struct {
	ItemsTotal   string `json:"itemsTotal"`
	PackagingFee string `json:"packagingFee"`
	DeliveryFee  string `json:"deliveryFee"`
	FinalAmount  string `json:"finalAmount"`
}

func toPricingResponse(pricing queries.PricingResponse) PricingResponse {
	return PricingResponse{
		ItemsTotal:   pricing.ItemsTotal.StringFixed(2),
		PackagingFee: pricing.PackagingFee.StringFixed(2),
		DeliveryFee:  pricing.DeliveryFee.StringFixed(2),
		FinalAmount:  pricing.FinalAmount.StringFixed(2),
	}
}

func toOrderResponse(order queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			DishID:   item.DishID,
			DishName: item.DishName,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
			Total:    item.Total.StringFixed(2),
		}
	}

	return OrderResponse{
		OrderID:     order.ID.String(),
		OrderNumber: order.Number,
		UserID:      order.UserID,
		MerchantID:  order.Merchant,
		Items:       items,
		DeliveryInfo: DeliveryResponse{
			RecipientName:  order.Delivery.RecipientName,
			RecipientPhone: order.Delivery.RecipientPhone,
			Address:        order.Delivery.Address,
		},
		Remark:    order.Remark,
		Status:    order.Status,
		Pricing:   toPricingResponse(order.Pricing),
		CreatedAt: order.CreatedAt,
	}
}
