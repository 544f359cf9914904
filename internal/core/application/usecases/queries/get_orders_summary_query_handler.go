package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersSummaryQueryHandler aggregates placed orders straight from the
// database, bypassing the aggregate for read performance.
//
// Example:
//
//	handler := NewGetOrdersSummaryQueryHandler(db)
//	query, _ := NewGetOrdersSummaryQuery(time.Now().Add(-time.Hour))
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders, %s total\n", summary.OrderCount, summary.TotalAmount)
type GetOrdersSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersSummaryQueryHandler creates a handler for order volume summaries.
// Requires a GORM database connection for query execution.
func NewGetOrdersSummaryQueryHandler(db *gorm.DB) GetOrdersSummaryQueryHandler {
	return GetOrdersSummaryQueryHandler{db: db}
}

// Handle executes the aggregation over orders placed since the query's lower
// bound. An empty window yields a zero count and a zero total.
func (h GetOrdersSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersSummaryQuery,
) (GetOrdersSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}

	var response GetOrdersSummaryQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(pricing_final_amount), 0)
		FROM orders
		WHERE created_at >= ?
	`, query.Since()).Row()

	if err := row.Scan(&response.OrderCount, &response.TotalAmount); err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}

	return response, nil
}
