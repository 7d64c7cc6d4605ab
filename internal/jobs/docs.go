// Package jobs provides scheduled background tasks for the order tracking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StoreHealthJob - Pings the database on HEALTH_CHECK_SCHEDULE and keeps the
// latest result for GET /health
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(func(ctx context.Context) error {
//		return postgres.Ping(ctx, db)
//	}, "@every 30s", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are parsed with seconds enabled, so both "*/30 * * * * *" and
// descriptors like "@every 30s" are accepted.
//
// # Error Handling
//
// A failed check is logged and recorded; it never stops the job. Recovery is
// logged once when the store answers again.
package jobs
