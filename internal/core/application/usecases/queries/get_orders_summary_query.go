package queries

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersSummaryQueryIsNotConstructed = errors.New(
	"GetOrdersSummaryQuery must be created via NewGetOrdersSummaryQuery constructor",
)

// GetOrdersSummaryQuery aggregates order volume placed since a point in time.
// Used by the periodic reporting job and intentionally not scoped to a user.
//
// Example:
//
//	query, err := NewGetOrdersSummaryQuery(time.Now().Add(-time.Hour))
//	summary, err := handler.Handle(ctx, query)
type GetOrdersSummaryQuery struct { //nolint:recvcheck //using for validation
	since time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersSummaryQuery creates a summary query over orders placed at or
// after the given instant.
func NewGetOrdersSummaryQuery(since time.Time) (GetOrdersSummaryQuery, error) {
	query := GetOrdersSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSince(since); err != nil {
		return GetOrdersSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersSummaryQueryIsNotConstructed if validation fails.
func (q GetOrdersSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersSummaryQueryIsNotConstructed)
}

// Since returns the lower bound of the reporting window.
func (q GetOrdersSummaryQuery) Since() time.Time {
	return q.since
}

func (q *GetOrdersSummaryQuery) setSince(since time.Time) error {
	if since.IsZero() {
		return errs.NewValueIsRequiredError("since")
	}

	q.since = since
	return nil
}

// GetOrdersSummaryQueryResponse holds aggregated order volume.
type GetOrdersSummaryQueryResponse struct {
	OrderCount  int64
	TotalAmount decimal.Decimal
}
