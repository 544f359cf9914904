package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderSummaryJob periodically logs the order volume of the last hour.
// Gives operators a heartbeat of placement activity without a metrics stack.
type OrderSummaryJob struct {
	handler queries.GetOrdersSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderSummaryJob creates a job that reports hourly order volume.
func NewOrderSummaryJob(handler queries.GetOrdersSummaryQueryHandler, logger *slog.Logger) *OrderSummaryJob {
	return &OrderSummaryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_summary_job"),
	}
}

// Start begins the summary job on an hourly schedule.
func (j *OrderSummaryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOrdersSummaryQuery(time.Now().UTC().Add(-time.Hour))
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Order summary job failed to build query", "error", queryErr)
			return
		}

		summary, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order summary job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Hourly order summary",
			"orders", summary.OrderCount,
			"total_amount", summary.TotalAmount.StringFixed(2),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order summary job started (running hourly)")
	return nil
}

// Stop stops the summary job.
func (j *OrderSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order summary job stopped")
}
