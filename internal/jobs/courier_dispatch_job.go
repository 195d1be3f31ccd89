package jobs

import (
	"context"
	"errors"
	"log/slog"

	"cafedelivery/internal/core/application/usecases/commands"
	"cafedelivery/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// dispatchSchedule runs the dispatch every fifteen seconds. Orders reach
// the courier backlog through the kitchen, so sub-second reaction buys
// nothing; fifteen seconds keeps the offer latency invisible next to
// preparation time.
const dispatchSchedule = "*/15 * * * * *"

// CourierDispatchJob periodically offers the oldest order awaiting a
// courier to the best available candidate.
type CourierDispatchJob struct {
	handler commands.DispatchCourierCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierDispatchJob creates the dispatch job.
func NewCourierDispatchJob(handler commands.DispatchCourierCommandHandler, logger *slog.Logger) *CourierDispatchJob {
	return &CourierDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_dispatch_job"),
	}
}

// Start begins the dispatch schedule.
func (j *CourierDispatchJob) Start() error {
	_, err := j.cron.AddFunc(dispatchSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewDispatchCourierCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			if isExpectedDispatchOutcome(err) {
				return
			}
			j.logger.ErrorContext(ctx, "Courier dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier dispatch job started (running every 15 seconds)")
	return nil
}

// Stop stops the dispatch schedule.
func (j *CourierDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier dispatch job stopped")
}

// isExpectedDispatchOutcome filters business outcomes that are not
// failures: nothing to dispatch, nobody to dispatch to, or a courier beat
// the job to the order.
func isExpectedDispatchOutcome(err error) bool {
	return errors.Is(err, commands.ErrNoOrderFound) ||
		errors.Is(err, commands.ErrNoAvailableCouriersFound) ||
		errors.Is(err, errs.ErrTransactionConflict)
}
