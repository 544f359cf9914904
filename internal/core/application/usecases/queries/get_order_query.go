// Package queries contains read-side operations of the CQRS architecture.
// Queries never modify state; they project persisted orders into response
// structures tailored for the caller.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order scoped to the requesting customer.
// The user identifier is part of the query: an order that exists but belongs
// to someone else is reported exactly like an order that does not exist, so
// callers cannot probe for foreign order ids.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, userID)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order on behalf of a user.
// Validates that the order id is constructed and the user id is present.
func NewGetOrderQuery(orderID kernel.UUID, userID string) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setUserID(userID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// UserID returns the identifier of the requesting customer.
func (q GetOrderQuery) UserID() string {
	return q.userID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	q.userID = userID
	return nil
}

// GetOrderQueryResponse is the full projection of one order.
type GetOrderQueryResponse struct {
	ID        kernel.UUID
	Number    string
	UserID    string
	Merchant  string
	Items     []OrderItemResponse
	Delivery  DeliveryInfoResponse
	Remark    string
	Status    string
	Pricing   PricingResponse
	CreatedAt time.Time
}

// OrderItemResponse is the projection of one dish line.
type OrderItemResponse struct {
	DishID   string
	DishName string
	Quantity int
	Price    decimal.Decimal
	Total    decimal.Decimal
}

// DeliveryInfoResponse is the projection of the delivery details.
type DeliveryInfoResponse struct {
	RecipientName  string
	RecipientPhone string
	Address        string
}

// PricingResponse is the projection of the monetary breakdown.
type PricingResponse struct {
	ItemsTotal   decimal.Decimal
	PackagingFee decimal.Decimal
	DeliveryFee  decimal.Decimal
	FinalAmount  decimal.Decimal
}
