package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager owns the background jobs of the service and their lifecycle.
type JobManager struct {
	storeHealthJob *StoreHealthJob
}

// NewJobManager wires the store check to ping; healthSchedule is a cron spec.
func NewJobManager(ping Pinger, healthSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		storeHealthJob: NewStoreHealthJob(ping, healthSchedule, logger),
	}
}

// StoreHealth exposes the check results of the store health job.
func (jm *JobManager) StoreHealth() *StoreHealthJob {
	return jm.storeHealthJob
}

// StartAll starts every job and returns the first start error.
func (jm *JobManager) StartAll() error {
	if err := jm.storeHealthJob.Start(); err != nil {
		return fmt.Errorf("failed to start store health job: %w", err)
	}
	return nil
}

// StopAll stops every job and waits for running ticks.
func (jm *JobManager) StopAll() {
	jm.storeHealthJob.Stop()
}
