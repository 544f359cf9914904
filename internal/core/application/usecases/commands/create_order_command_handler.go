package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// NumberGenerator produces a fresh human-facing order number per call.
type NumberGenerator interface {
	Next(now time.Time) string
}

// CreateOrderResult is the projection of a freshly placed order returned to
// the caller, including the identifiers assigned by the service and the
// computed pricing breakdown.
type CreateOrderResult struct {
	ID        kernel.UUID
	Number    string
	Status    order.Status
	Pricing   order.Pricing
	CreatedAt time.Time
}

// CreateOrderCommandHandler handles the business logic for order placement.
// Prices the validated command, assigns fresh identifiers, and persists the
// resulting aggregate in a single transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, calculator, numbers)
//	cmd, _ := NewCreateOrderCommand(userID, merchantID, items, delivery, remark)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %s placed, total %s", result.Number, result.Pricing.FinalAmount())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	calculator services.PricingCalculator
	numbers    NumberGenerator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, a
// PricingCalculator for the monetary breakdown, and a NumberGenerator for
// human-facing order numbers.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	calculator services.PricingCalculator,
	numbers NumberGenerator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		numbers:    numbers,
	}
}

// Handle processes the order placement command.
// Computes the pricing breakdown, generates a fresh id and order number,
// constructs the aggregate, and persists it. Nothing is persisted when any
// step fails; the transaction is rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	pricing, err := h.calculator.Calculate(cmd.MerchantID(), cmd.Items(), cmd.DeliveryInfo())
	if err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		h.numbers.Next(time.Now().UTC()),
		cmd.UserID(),
		cmd.MerchantID(),
		cmd.Items(),
		cmd.DeliveryInfo(),
		cmd.Remark(),
		pricing,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		ID:        aggregate.ID(),
		Number:    aggregate.Number(),
		Status:    aggregate.Status(),
		Pricing:   aggregate.Pricing(),
		CreatedAt: aggregate.CreatedAt(),
	}, nil
}
