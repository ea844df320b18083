// Package jobs provides scheduled background tasks for the travel order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. RetentionSweepJob - Runs daily to permanently remove soft-deleted travel
// orders whose retention window has expired
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "0 0 3 * * *", running once a day at
// 03:00 server time when request traffic is lowest.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next scheduled run; a failed
// sweep never affects request-path operations.
package jobs
