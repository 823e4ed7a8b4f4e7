package jobs

import (
	"context"
	"errors"
	"log/slog"

	"orderdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRelaySchedule runs the relay every five seconds.
const DefaultRelaySchedule = "*/5 * * * * *"

type relayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOrderEventsCommand) error
}

// OrderEventsRelayJob moves order events from the outbox to the event stream.
// A tick that is still running when the next one fires makes that one skip.
type OrderEventsRelayJob struct {
	handler   relayHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderEventsRelayJob creates a relay job. schedule is a six-field cron
// expression (seconds first); an empty schedule uses DefaultRelaySchedule.
func NewOrderEventsRelayJob(
	handler relayHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *OrderEventsRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}

	return &OrderEventsRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "order_events_relay_job"),
	}
}

// Start schedules the job. Invalid schedules and batch sizes are reported
// before anything runs.
func (j *OrderEventsRelayJob) Start() error {
	cmd, err := commands.NewRelayOrderEventsCommand(j.batchSize)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background(), cmd)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order events relay job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running tick to finish.
func (j *OrderEventsRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order events relay job stopped")
}

func (j *OrderEventsRelayJob) run(ctx context.Context, cmd commands.RelayOrderEventsCommand) {
	if err := j.handler.Handle(ctx, cmd); err != nil {
		// An empty outbox is the normal idle state
		if !errors.Is(err, commands.ErrNoOrderEventsToRelay) {
			j.logger.ErrorContext(ctx, "Order events relay job failed", "error", err)
		}
	}
}
