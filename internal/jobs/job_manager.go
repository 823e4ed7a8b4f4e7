package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderEventsRelayJob *OrderEventsRelayJob
}

// RelayConfig describes how the outbox relay is scheduled.
type RelayConfig struct {
	Schedule  string
	BatchSize int
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	relayHandler relayHandler,
	relayConfig RelayConfig,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderEventsRelayJob: NewOrderEventsRelayJob(relayHandler, relayConfig.Schedule, relayConfig.BatchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderEventsRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start order events relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderEventsRelayJob.Stop()
}
