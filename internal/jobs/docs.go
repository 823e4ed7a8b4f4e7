// Package jobs provides scheduled background tasks for the order desk.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderEventsRelayJob - reads unpublished order events from the outbox table
// and publishes them to Kafka, by default every five seconds.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayHandler, jobs.RelayConfig{BatchSize: 100}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - The relay job ignores an empty outbox
//   - Events that fail to publish stay in the outbox for the next tick
//   - Invalid schedules or batch sizes fail StartAll before any tick runs
package jobs
